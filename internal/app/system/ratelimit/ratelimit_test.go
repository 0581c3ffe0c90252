package ratelimit_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/assetmanager/internal/app/system/ratelimit"
)

func TestLimiter_AllowsUpToLimit(t *testing.T) {
	l := ratelimit.New(3, time.Hour)
	for i := 0; i < 3; i++ {
		if !l.Allow("k") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("k") {
		t.Error("fourth request should be limited")
	}
	if !l.Allow("other") {
		t.Error("keys are independent")
	}
	l.Reset("k")
	if !l.Allow("k") {
		t.Error("Reset should restore the bucket")
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest("POST", "/login", nil)
	req.RemoteAddr = "10.1.1.1:5555"
	if got := ratelimit.ClientIP(req); got != "10.1.1.1" {
		t.Errorf("RemoteAddr: got %q", got)
	}
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := ratelimit.ClientIP(req); got != "203.0.113.9" {
		t.Errorf("X-Forwarded-For: got %q", got)
	}
}

func TestLoginLimiter_PerUser(t *testing.T) {
	ll := ratelimit.NewLoginLimiter(100, 2)
	req := httptest.NewRequest("POST", "/login", nil)

	for i := 0; i < 2; i++ {
		if ok, _ := ll.Check(req, "Admin"); !ok {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	ok, msg := ll.Check(req, "admin")
	if ok || msg == "" {
		t.Errorf("third attempt for same user should be limited (case-insensitive), got ok=%v", ok)
	}
	ll.ResetUser("admin")
	if ok, _ := ll.Check(req, "admin"); !ok {
		t.Error("ResetUser should clear the user bucket")
	}
}
