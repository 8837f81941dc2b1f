package oracle

import (
	"context"
	"net/http"
	"testing"
)

// TestTargetMatcherExact and TestTargetMatcherEllipsis cover S4: a
// bech32 address both starting with a prefix and ending with a
// suffix must match a "prefix...suffix" target.
func TestTargetMatcherExact(t *testing.T) {
	tm := NewTargetMatcher([]string{"stake1u9t04dtwptk5776eluj6ruyd782k66npnf55tdrp6dvwnzs24r8yq"})
	match, err := tm.Classify(context.Background(), "stake1u9t04dtwptk5776eluj6ruyd782k66npnf55tdrp6dvwnzs24r8yq")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match == nil {
		t.Fatalf("expected exact match")
	}
	if match.Reason != "user_target(0)" {
		t.Errorf("match.Reason = %q, want user_target(0)", match.Reason)
	}
}

func TestTargetMatcherEllipsis(t *testing.T) {
	tm := NewTargetMatcher([]string{"stake1u9...24r8yq"})

	match, err := tm.Classify(context.Background(), "stake1u9t04dtwptk5776eluj6ruyd782k66npnf55tdrp6dvwnzs24r8yq")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match == nil {
		t.Fatalf("expected prefix/suffix match")
	}

	noMatch, err := tm.Classify(context.Background(), "stake1u8p6x7049w05z8y2wqwfrdx04dzupzkye68qkv9zcec3dwqd9tweh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if noMatch != nil {
		t.Errorf("expected no match for an address not sharing the prefix/suffix")
	}
}

func TestTargetMatcherNoTargets(t *testing.T) {
	tm := NewTargetMatcher(nil)
	match, err := tm.Classify(context.Background(), "stake1anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match != nil {
		t.Errorf("expected no match with an empty target list")
	}
}

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		code int
		want httpStatusClass
	}{
		{http.StatusOK, statusOK},
		{http.StatusNotFound, statusNotFound},
		{http.StatusUnauthorized, statusAuth},
		{http.StatusForbidden, statusAuth},
		{http.StatusTeapot, statusTransient},
		{http.StatusTooManyRequests, statusTransient},
		{http.StatusInternalServerError, statusTransient},
	}
	for _, c := range cases {
		if got := classifyStatus(c.code); got != c.want {
			t.Errorf("classifyStatus(%d) = %v, want %v", c.code, got, c.want)
		}
	}
}
