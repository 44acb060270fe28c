package usecase

import (
	"context"
	"errors"
	"testing"

	"quotechat/internal/domain/entities"
	mock_interfaces "quotechat/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuotationUseCase_Append(t *testing.T) {
	t.Run("invalid session id", func(t *testing.T) {
		uc := NewQuotationUseCase(nil)
		_, err := uc.Append(context.Background(), "   ", "Total: 100.00")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		uc := NewQuotationUseCase(nil)
		_, err := uc.Append(context.Background(), "s1", "  ")
		if !errors.Is(err, ErrEmptyQuotationText) {
			t.Fatalf("expected ErrEmptyQuotationText, got %v", err)
		}
	})

	t.Run("append success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().AppendQuotation(gomock.Any(), "s1", "Total: 100.00").
			Return(entities.Quotation{ID: 1, Status: entities.QuotationStatusPending}, nil)

		q, err := uc.Append(context.Background(), "s1", "Total: 100.00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID != 1 {
			t.Fatalf("expected id 1, got %d", q.ID)
		}
	})
}

func TestQuotationUseCase_Confirm(t *testing.T) {
	t.Run("invalid quotation id", func(t *testing.T) {
		uc := NewQuotationUseCase(nil)
		_, err := uc.Confirm(context.Background(), "s1", 0)
		if !errors.Is(err, ErrInvalidQuotationID) {
			t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().GetQuotation(gomock.Any(), "s1", int64(7)).Return(entities.Quotation{}, nil)

		_, err := uc.Confirm(context.Background(), "s1", 7)
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("confirms a pending quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().GetQuotation(gomock.Any(), "s1", int64(1)).
			Return(entities.Quotation{ID: 1, Status: entities.QuotationStatusPending}, nil)
		repo.EXPECT().UpdateQuotationStatus(gomock.Any(), "s1", int64(1), entities.QuotationStatusConfirmed).
			Return(entities.Quotation{ID: 1, Status: entities.QuotationStatusConfirmed}, nil)

		q, err := uc.Confirm(context.Background(), "s1", 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuotationStatusConfirmed {
			t.Fatalf("expected confirmed, got %s", q.Status)
		}
	})

	t.Run("confirming a disputed quotation clears the dispute", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().GetQuotation(gomock.Any(), "s1", int64(2)).
			Return(entities.Quotation{ID: 2, Status: entities.QuotationStatusDisputed}, nil)
		repo.EXPECT().UpdateQuotationStatus(gomock.Any(), "s1", int64(2), entities.QuotationStatusConfirmed).
			Return(entities.Quotation{ID: 2, Status: entities.QuotationStatusConfirmed}, nil)

		q, err := uc.Confirm(context.Background(), "s1", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuotationStatusConfirmed {
			t.Fatalf("expected confirmed, got %s", q.Status)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().GetQuotation(gomock.Any(), "s1", int64(1)).Return(entities.Quotation{}, errors.New("db"))

		_, err := uc.Confirm(context.Background(), "s1", 1)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuotationUseCase_ConfirmLatestPending(t *testing.T) {
	t.Run("targets the most recent pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().ListQuotations(gomock.Any(), "s1").Return([]entities.Quotation{
			{ID: 1, Status: entities.QuotationStatusPending},
			{ID: 2, Status: entities.QuotationStatusConfirmed},
			{ID: 3, Status: entities.QuotationStatusPending},
		}, nil)
		repo.EXPECT().UpdateQuotationStatus(gomock.Any(), "s1", int64(3), entities.QuotationStatusConfirmed).
			Return(entities.Quotation{ID: 3, Status: entities.QuotationStatusConfirmed}, nil)

		q, ok, err := uc.ConfirmLatestPending(context.Background(), "s1")
		if err != nil || !ok {
			t.Fatalf("unexpected result: ok=%v err=%v", ok, err)
		}
		if q.ID != 3 {
			t.Fatalf("expected id 3, got %d", q.ID)
		}
	})

	t.Run("nothing pending is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().ListQuotations(gomock.Any(), "s1").Return([]entities.Quotation{
			{ID: 1, Status: entities.QuotationStatusConfirmed},
		}, nil)

		_, ok, err := uc.ConfirmLatestPending(context.Background(), "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatalf("expected no-op")
		}
	})
}

func TestQuotationUseCase_Dispute(t *testing.T) {
	t.Run("disputing a pending quotation is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().GetQuotation(gomock.Any(), "s1", int64(1)).
			Return(entities.Quotation{ID: 1, Status: entities.QuotationStatusPending}, nil)

		_, err := uc.Dispute(context.Background(), "s1", 1)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("disputing twice is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().GetQuotation(gomock.Any(), "s1", int64(1)).
			Return(entities.Quotation{ID: 1, Status: entities.QuotationStatusDisputed}, nil)

		_, err := uc.Dispute(context.Background(), "s1", 1)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("disputes a confirmed quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().GetQuotation(gomock.Any(), "s1", int64(1)).
			Return(entities.Quotation{ID: 1, Status: entities.QuotationStatusConfirmed}, nil)
		repo.EXPECT().UpdateQuotationStatus(gomock.Any(), "s1", int64(1), entities.QuotationStatusDisputed).
			Return(entities.Quotation{ID: 1, Status: entities.QuotationStatusDisputed}, nil)

		q, err := uc.Dispute(context.Background(), "s1", 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuotationStatusDisputed {
			t.Fatalf("expected disputed, got %s", q.Status)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().GetQuotation(gomock.Any(), "s1", int64(9)).Return(entities.Quotation{}, nil)

		_, err := uc.Dispute(context.Background(), "s1", 9)
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})
}

func TestQuotationUseCase_ListProjected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionRepository(ctrl)
	uc := NewQuotationUseCase(repo)

	repo.EXPECT().ListQuotations(gomock.Any(), "s1").Return([]entities.Quotation{
		{ID: 1, Fingerprint: "|a", Status: entities.QuotationStatusDisputed},
		{ID: 2, Fingerprint: "|b", Status: entities.QuotationStatusConfirmed},
		{ID: 3, Fingerprint: "|c", Status: entities.QuotationStatusPending},
	}, nil)

	rows, err := uc.ListProjected(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if !rows[0].Replaced || rows[0].ReplacedByID != 2 {
		t.Fatalf("expected first row replaced by 2, got %+v", rows[0])
	}
}

func TestQuotationUseCase_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionRepository(ctrl)
	uc := NewQuotationUseCase(repo)

	repo.EXPECT().ClearSession(gomock.Any(), "s1").Return(nil)

	if err := uc.Reset(context.Background(), "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
