package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/iho/takeledger/internal/domain"
	"github.com/iho/takeledger/internal/usecase"
	"github.com/iho/takeledger/internal/usecase/mocks"
)

func TestAuditUseCase_CheckMember(t *testing.T) {
	tests := []struct {
		name       string
		taking     string
		wantErr    error
		consistent bool
	}{
		{"matches actual takes", "7", nil, true},
		{"drifted aggregate", "9", usecase.ErrInconsistentTaking, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			txMgr := mocks.NewMockTransactionManager(ctrl)
			tx := mocks.NewMockTransaction(ctrl)
			teams := mocks.NewMockTeamRepository(ctrl)
			members := mocks.NewMockMemberRepository(ctrl)
			takes := mocks.NewMockTakeRepository(ctrl)

			gomock.InOrder(
				txMgr.EXPECT().Begin(gomock.Any()).Return(tx, nil),
				takes.EXPECT().LockLedger(gomock.Any(), tx).Return(nil),
				members.EXPECT().GetByIDTx(gomock.Any(), tx, "alice").
					Return(&domain.Member{ID: "alice", Taking: d(tt.taking)}, nil),
				takes.EXPECT().TeamsForMemberTx(gomock.Any(), tx, "alice").Return([]string{"team-a", "team-b"}, nil),
			)
			teams.EXPECT().GetByIDForUpdate(gomock.Any(), tx, "team-a").
				Return(&domain.Team{ID: "team-a", IsPlural: true, Receiving: d("3")}, nil)
			teams.EXPECT().GetByIDForUpdate(gomock.Any(), tx, "team-b").
				Return(&domain.Team{ID: "team-b", IsPlural: true, Receiving: d("100")}, nil)
			takes.EXPECT().CurrentTakesTx(gomock.Any(), tx, "team-a").
				Return([]domain.Take{{TeamID: "team-a", MemberID: "alice", Amount: d("5"), CTime: clock}}, nil)
			takes.EXPECT().CurrentTakesTx(gomock.Any(), tx, "team-b").
				Return([]domain.Take{{TeamID: "team-b", MemberID: "alice", Amount: d("4"), CTime: clock}}, nil)
			tx.EXPECT().Rollback(gomock.Any()).Return(nil)

			uc := usecase.NewAuditUseCase(txMgr, teams, members, takes)
			report, err := uc.CheckMember(context.Background(), "alice")

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if report == nil {
				t.Fatal("expected a report")
			}
			if report.Consistent != tt.consistent {
				t.Errorf("consistent = %v, want %v", report.Consistent, tt.consistent)
			}
			// 3 from the underfunded team plus 4 in full
			if !report.ActualTaking.Equal(d("7")) {
				t.Errorf("actual taking = %s, want 7", report.ActualTaking)
			}
			if len(report.Teams) != 2 {
				t.Errorf("teams = %v", report.Teams)
			}
		})
	}
}

func TestAuditUseCase_CheckTeam_LockFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	txMgr := mocks.NewMockTransactionManager(ctrl)
	tx := mocks.NewMockTransaction(ctrl)
	takes := mocks.NewMockTakeRepository(ctrl)

	txMgr.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	takes.EXPECT().LockLedger(gomock.Any(), tx).Return(domain.ErrLockUnavailable)
	tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	uc := usecase.NewAuditUseCase(txMgr, mocks.NewMockTeamRepository(ctrl), mocks.NewMockMemberRepository(ctrl), takes)
	report, err := uc.CheckTeam(context.Background(), "team-1")
	if !errors.Is(err, domain.ErrLockUnavailable) {
		t.Errorf("err = %v, want ErrLockUnavailable", err)
	}
	if report != nil {
		t.Errorf("report = %+v, want nil", report)
	}
}

func TestAuditUseCase_RejectsBlankIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := usecase.NewAuditUseCase(
		mocks.NewMockTransactionManager(ctrl),
		mocks.NewMockTeamRepository(ctrl),
		mocks.NewMockMemberRepository(ctrl),
		mocks.NewMockTakeRepository(ctrl),
	)

	if _, err := uc.CheckMember(context.Background(), " "); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("CheckMember err = %v", err)
	}
	if _, err := uc.CheckTeam(context.Background(), ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("CheckTeam err = %v", err)
	}
}
