package orchestrators

import (
	"context"
	"testing"

	"padelcygnus/internal/domain/member"
)

// TestExecuteDeleteMember verifies only the named member is removed.
func TestExecuteDeleteMember(t *testing.T) {
	f, ws := seededAdmin(t)
	if err := ExecuteDeleteMember(context.Background(), ws, "2", MemberDeps{MemberStore: f.members}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list := f.members.list(ws)
	if len(list) != 2 || list[0].Name != "John Smith" || list[1].Name != "Mike Wilson" {
		t.Fatalf("after delete = %+v", list)
	}
}

// TestExecuteAddMember verifies new members get a standard plan at the end of the roster.
func TestExecuteAddMember(t *testing.T) {
	f, ws := seededAdmin(t)
	m, err := ExecuteAddMember(context.Background(), AddMemberInput{WorkspaceID: ws, Name: "Ana", Email: "ana@example.com"},
		MemberDeps{MemberStore: f.members, GenerateID: sequentialIDs()})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if m.MembershipType != member.MembershipStandard {
		t.Errorf("MembershipType = %q", m.MembershipType)
	}
	list := f.members.list(ws)
	if len(list) != 4 || list[3].ID != m.ID {
		t.Errorf("roster = %+v", list)
	}
}
