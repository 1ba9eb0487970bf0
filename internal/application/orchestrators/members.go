package orchestrators

import (
	"context"
	"log/slog"

	"padelcygnus/internal/domain/member"
)

// MemberStoreForOrchestrator defines the member store interface needed by member mutations.
type MemberStoreForOrchestrator interface {
	Save(ctx context.Context, workspaceID string, m member.Member) error
	Delete(ctx context.Context, workspaceID, id string) error
}

// MemberDeps holds dependencies for member mutations.
type MemberDeps struct {
	MemberStore MemberStoreForOrchestrator
	GenerateID  func() string
}

// AddMemberInput carries input for the add-member orchestrator.
type AddMemberInput struct {
	WorkspaceID string
	Name        string
	Email       string
}

// ExecuteAddMember appends a member from the add-member dialog. Input is not validated.
// PRE: input.WorkspaceID is non-empty
// POST: A new Estándar member with a fresh id is appended
func ExecuteAddMember(ctx context.Context, input AddMemberInput, deps MemberDeps) (member.Member, error) {
	m := member.New(deps.GenerateID(), input.Name, input.Email)
	if err := deps.MemberStore.Save(ctx, input.WorkspaceID, m); err != nil {
		return member.Member{}, err
	}
	slog.Info("member_event", "event", "member_added", "workspace_id", input.WorkspaceID, "member_id", m.ID)
	return m, nil
}

// ExecuteDeleteMember removes a member unconditionally. Bookings that reference
// the member are left as they are.
// PRE: workspaceID is non-empty
// POST: No member with id remains; other members are unchanged
func ExecuteDeleteMember(ctx context.Context, workspaceID, id string, deps MemberDeps) error {
	if err := deps.MemberStore.Delete(ctx, workspaceID, id); err != nil {
		return err
	}
	slog.Info("member_event", "event", "member_deleted", "workspace_id", workspaceID, "member_id", id)
	return nil
}
