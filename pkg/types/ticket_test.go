package types

import "testing"

func strPtr(s string) *string { return &s }

func TestTicketPatchIsZero(t *testing.T) {
	tests := []struct {
		name  string
		patch TicketPatch
		want  bool
	}{
		{
			name:  "empty patch",
			patch: TicketPatch{},
			want:  true,
		},
		{
			name:  "status set",
			patch: TicketPatch{Status: strPtr("Closed")},
			want:  false,
		},
		{
			name:  "empty string still counts as set",
			patch: TicketPatch{Assignee: strPtr("")},
			want:  false,
		},
		{
			name: "all fields set",
			patch: TicketPatch{
				Status:      strPtr("Open"),
				Assignee:    strPtr("a"),
				Category:    strPtr("Bug"),
				Title:       strPtr("T"),
				Description: strPtr("D"),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.patch.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserPublicClearsHash(t *testing.T) {
	u := User{
		ID:           "id-1",
		Username:     "admin",
		PasswordHash: "$2a$10$secret",
	}

	pub := u.Public()
	if pub.PasswordHash != "" {
		t.Errorf("Public() kept the password hash: %q", pub.PasswordHash)
	}
	if pub.Username != "admin" || pub.ID != "id-1" {
		t.Errorf("Public() changed public fields: %+v", pub)
	}
	// The original is untouched.
	if u.PasswordHash == "" {
		t.Error("Public() cleared the hash on the receiver")
	}
}
