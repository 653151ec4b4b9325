package handlers

import "testing"

func TestSessionRequestValidation(t *testing.T) {
	valid := SessionRequest{
		Date:      "2024-06-01",
		StartTime: "10:00",
		EndTime:   "11:00",
		BranchID:  "6fa459ea-ee8a-3ca4-894e-db77e160355e",
		CoachIDs:  []string{"6fa459ea-ee8a-3ca4-894e-db77e160355e"},
	}

	tests := []struct {
		name    string
		mutate  func(r *SessionRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *SessionRequest) {}, wantErr: false},
		{name: "valid with students", mutate: func(r *SessionRequest) {
			r.StudentIDs = []string{"886313e1-3b8a-5372-9b90-0c9aee199e5d"}
		}, wantErr: false},
		{name: "bad date format", mutate: func(r *SessionRequest) { r.Date = "06/01/2024" }, wantErr: true},
		{name: "bad start time", mutate: func(r *SessionRequest) { r.StartTime = "10am" }, wantErr: true},
		{name: "missing end time", mutate: func(r *SessionRequest) { r.EndTime = "" }, wantErr: true},
		{name: "branch id not a uuid", mutate: func(r *SessionRequest) { r.BranchID = "main-branch" }, wantErr: true},
		{name: "no coaches", mutate: func(r *SessionRequest) { r.CoachIDs = nil }, wantErr: true},
		{name: "student id not a uuid", mutate: func(r *SessionRequest) { r.StudentIDs = []string{"bob"} }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := validate.Struct(req)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate.Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMarkAttendanceRequestValidation(t *testing.T) {
	tests := []struct {
		status  string
		wantErr bool
	}{
		{status: "present", wantErr: false},
		{status: "absent", wantErr: false},
		{status: "pending", wantErr: false},
		{status: "late", wantErr: true},
		{status: "", wantErr: true},
	}
	for _, tt := range tests {
		err := validate.Struct(MarkAttendanceRequest{Status: tt.status})
		if (err != nil) != tt.wantErr {
			t.Errorf("status %q: error = %v, wantErr %v", tt.status, err, tt.wantErr)
		}
	}
}

func TestCheckConflictsRequestValidation(t *testing.T) {
	badID := "not-a-uuid"
	goodID := "6fa459ea-ee8a-3ca4-894e-db77e160355e"

	valid := CheckConflictsRequest{
		Date:      "2024-06-01",
		StartTime: "10:00",
		EndTime:   "11:00",
		CoachIDs:  []string{goodID},
	}
	if err := validate.Struct(valid); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	withExclude := valid
	withExclude.ExcludeSessionID = &goodID
	if err := validate.Struct(withExclude); err != nil {
		t.Errorf("valid request with exclusion rejected: %v", err)
	}

	broken := valid
	broken.ExcludeSessionID = &badID
	if err := validate.Struct(broken); err == nil {
		t.Error("invalid exclude_session_id accepted")
	}
}
