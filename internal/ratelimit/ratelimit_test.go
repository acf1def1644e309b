package ratelimit

import "testing"

func newTestLimiter() *Limiter {
	// Low refill so tests exercise the burst, not the rate.
	return New(Limits{
		ReadsPerMinute:     1,
		PublishesPerMinute: 1,
		Burst:              3,
	})
}

func TestBurstThenDeny(t *testing.T) {
	l := newTestLimiter()

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1", Read) {
			t.Fatalf("request %d within burst was denied", i)
		}
	}
	if l.Allow("10.0.0.1", Read) {
		t.Error("request beyond burst was allowed")
	}
}

func TestClassesAreIndependent(t *testing.T) {
	l := newTestLimiter()

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1", Publish) {
			t.Fatalf("publish %d within burst was denied", i)
		}
	}
	if l.Allow("10.0.0.1", Publish) {
		t.Error("publish beyond burst was allowed")
	}

	// Exhausting the publish bucket leaves reads untouched.
	if !l.Allow("10.0.0.1", Read) {
		t.Error("read denied after publish bucket drained")
	}
}

func TestIdentitiesAreIndependent(t *testing.T) {
	l := newTestLimiter()

	for i := 0; i < 4; i++ {
		l.Allow("10.0.0.1", Read)
	}
	if !l.Allow("10.0.0.2", Read) {
		t.Error("second identity affected by first identity's bucket")
	}
}
