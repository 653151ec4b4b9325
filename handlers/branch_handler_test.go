package handlers

import "testing"

func TestBranchDeleteBlocked(t *testing.T) {
	tests := []struct {
		name         string
		studentCount int64
		sessionCount int64
		wantBlocked  bool
	}{
		{name: "empty branch can go", studentCount: 0, sessionCount: 0, wantBlocked: false},
		{name: "students block deletion", studentCount: 3, sessionCount: 0, wantBlocked: true},
		{name: "sessions block deletion", studentCount: 0, sessionCount: 1, wantBlocked: true},
		{name: "both block deletion", studentCount: 2, sessionCount: 5, wantBlocked: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, blocked := branchDeleteBlocked(tt.studentCount, tt.sessionCount)
			if blocked != tt.wantBlocked {
				t.Errorf("branchDeleteBlocked(%d, %d) blocked = %v, want %v", tt.studentCount, tt.sessionCount, blocked, tt.wantBlocked)
			}
			if blocked && reason == "" {
				t.Error("blocked deletion must carry a reason")
			}
			if !blocked && reason != "" {
				t.Errorf("allowed deletion carries unexpected reason %q", reason)
			}
		})
	}
}
