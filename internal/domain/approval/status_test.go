package approval

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw  string
		want Status
	}{
		{"approved", StatusApproved},
		{"Approved", StatusApproved},
		{"  APPROVE  ", StatusApproved},
		{"đã duyệt", StatusApproved},
		{"pending", StatusPending},
		{"chờ duyệt", StatusPending},
		{"rejected", StatusRejected},
		{"từ chối", StatusRejected},
		{"created", StatusCreated},
		{"tạo mới", StatusCreated},
		{"0", StatusCreated},
		{"1", StatusPending},
		{"2", StatusApproved},
		{"3", StatusRejected},
		{"", StatusCreated},
		{"garbage", StatusCreated},
		{"99", StatusCreated},
	}
	for _, c := range cases {
		got := Normalize(c.raw)
		if got != c.want {
			t.Errorf("Normalize(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestNormalizeCode(t *testing.T) {
	cases := []struct {
		code int
		want Status
	}{
		{0, StatusCreated},
		{1, StatusPending},
		{2, StatusApproved},
		{3, StatusRejected},
		{-1, StatusCreated},
		{42, StatusCreated},
	}
	for _, c := range cases {
		got := NormalizeCode(c.code)
		if got != c.want {
			t.Errorf("NormalizeCode(%d) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestStatusString(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusCreated, "created"},
		{StatusPending, "pending"},
		{StatusApproved, "approved"},
		{StatusRejected, "rejected"},
	}
	for _, c := range cases {
		if got := c.status.String(); got != c.want {
			t.Errorf("Status(%d).String() = %q, want %q", c.status, got, c.want)
		}
	}
}
