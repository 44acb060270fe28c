package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"quotechat/internal/domain/entities"
	"quotechat/internal/usecase/interfaces"
	mock_interfaces "quotechat/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const chatQuotationText = "SERVICE QUOTATION\n" +
	"Service Description: Office cleaning service\n" +
	"Quantity: 2\n" +
	"Unit Price (RM): 150.00\n" +
	"Subtotal: 300.00\n" +
	"Tax (8%): 24.00\n" +
	"Total: 324.00"

func TestIsConfirmationMessage(t *testing.T) {
	cases := []struct {
		message string
		want    bool
	}{
		{"yes", true},
		{"  YES  ", true},
		{"confirm", true},
		{"I confirm this quotation", true},
		{"Please CONFIRM it", true},
		{"yesterday I called you", false},
		{"no", false},
		{"what about carpets?", false},
	}
	for _, c := range cases {
		if got := IsConfirmationMessage(c.message); got != c.want {
			t.Fatalf("IsConfirmationMessage(%q): expected %v, got %v", c.message, c.want, got)
		}
	}
}

func TestChatUseCase_ProcessMessage(t *testing.T) {
	t.Run("invalid session id", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil)
		_, err := uc.ProcessMessage(context.Background(), "  ", "hi")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("empty message", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil)
		_, err := uc.ProcessMessage(context.Background(), "s1", "  ")
		if !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("plain message goes to the backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIChatGateway(ctrl)
		uc := NewChatUseCase(repo, gateway)

		gateway.EXPECT().SendMessage(gomock.Any(), "hello", "s1").
			Return(interfaces.ChatReply{ResponseText: "Hi, how can I help?"}, nil)

		result, err := uc.ProcessMessage(context.Background(), "s1", "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ResponseText != "Hi, how can I help?" {
			t.Fatalf("unexpected response: %q", result.ResponseText)
		}
		if result.QuotationID != 0 || result.QuotationConfirmed {
			t.Fatalf("unexpected quotation result: %+v", result)
		}
	})

	t.Run("backend failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIChatGateway(ctrl)
		uc := NewChatUseCase(repo, gateway)

		gateway.EXPECT().SendMessage(gomock.Any(), "hello", "s1").
			Return(interfaces.ChatReply{}, errors.New("connection refused"))

		_, err := uc.ProcessMessage(context.Background(), "s1", "hello")
		if !errors.Is(err, ErrBackendUnavailable) {
			t.Fatalf("expected ErrBackendUnavailable, got %v", err)
		}
	})

	t.Run("backend quotation is recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIChatGateway(ctrl)
		uc := NewChatUseCase(repo, gateway)

		gateway.EXPECT().SendMessage(gomock.Any(), "clean my office", "s1").
			Return(interfaces.ChatReply{ResponseText: "Here is your quotation", QuotationText: chatQuotationText}, nil)
		repo.EXPECT().ListQuotations(gomock.Any(), "s1").Return(nil, nil)
		repo.EXPECT().AppendQuotation(gomock.Any(), "s1", chatQuotationText).
			Return(entities.Quotation{ID: 1, Text: chatQuotationText, Status: entities.QuotationStatusPending}, nil)

		result, err := uc.ProcessMessage(context.Background(), "s1", "clean my office")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.QuotationID != 1 || result.QuotationText != chatQuotationText {
			t.Fatalf("unexpected result: %+v", result)
		}
	})

	t.Run("re-emitted pending quotation collapses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIChatGateway(ctrl)
		uc := NewChatUseCase(repo, gateway)

		existing := entities.Quotation{
			ID:          4,
			Text:        chatQuotationText,
			Status:      entities.QuotationStatusPending,
			Fingerprint: entities.Fingerprint(chatQuotationText),
		}
		rewrapped := "Sure, as mentioned:\n\n" + chatQuotationText + "\n\nReply 'yes' to confirm."

		gateway.EXPECT().SendMessage(gomock.Any(), "tell me again", "s1").
			Return(interfaces.ChatReply{ResponseText: "Sure", QuotationText: rewrapped}, nil)
		repo.EXPECT().ListQuotations(gomock.Any(), "s1").Return([]entities.Quotation{existing}, nil)

		result, err := uc.ProcessMessage(context.Background(), "s1", "tell me again")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.QuotationID != 4 {
			t.Fatalf("expected collapse onto id 4, got %d", result.QuotationID)
		}
	})

	t.Run("re-emission over a confirmed entity appends fresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIChatGateway(ctrl)
		uc := NewChatUseCase(repo, gateway)

		existing := entities.Quotation{
			ID:          4,
			Text:        chatQuotationText,
			Status:      entities.QuotationStatusConfirmed,
			Fingerprint: entities.Fingerprint(chatQuotationText),
		}

		gateway.EXPECT().SendMessage(gomock.Any(), "same again please", "s1").
			Return(interfaces.ChatReply{ResponseText: "Here", QuotationText: chatQuotationText}, nil)
		repo.EXPECT().ListQuotations(gomock.Any(), "s1").Return([]entities.Quotation{existing}, nil)
		repo.EXPECT().AppendQuotation(gomock.Any(), "s1", chatQuotationText).
			Return(entities.Quotation{ID: 5, Text: chatQuotationText, Status: entities.QuotationStatusPending}, nil)

		result, err := uc.ProcessMessage(context.Background(), "s1", "same again please")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.QuotationID != 5 {
			t.Fatalf("expected fresh id 5, got %d", result.QuotationID)
		}
	})

	t.Run("confirmation settles locally without the backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIChatGateway(ctrl)
		uc := NewChatUseCase(repo, gateway)

		pending := entities.Quotation{ID: 2, Text: chatQuotationText, Status: entities.QuotationStatusPending}
		repo.EXPECT().ListQuotations(gomock.Any(), "s1").Return([]entities.Quotation{pending}, nil)
		repo.EXPECT().UpdateQuotationStatus(gomock.Any(), "s1", int64(2), entities.QuotationStatusConfirmed).
			Return(entities.Quotation{ID: 2, Text: chatQuotationText, Status: entities.QuotationStatusConfirmed}, nil)

		result, err := uc.ProcessMessage(context.Background(), "s1", "yes")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.QuotationConfirmed || result.QuotationID != 2 {
			t.Fatalf("unexpected result: %+v", result)
		}
		if !strings.Contains(result.ResponseText, "Thank you for confirming") {
			t.Fatalf("unexpected response text: %q", result.ResponseText)
		}
	})

	t.Run("confirmation with nothing pending falls through to the backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIChatGateway(ctrl)
		uc := NewChatUseCase(repo, gateway)

		repo.EXPECT().ListQuotations(gomock.Any(), "s1").Return(nil, nil)
		gateway.EXPECT().SendMessage(gomock.Any(), "yes", "s1").
			Return(interfaces.ChatReply{ResponseText: "Which service would you like?"}, nil)

		result, err := uc.ProcessMessage(context.Background(), "s1", "yes")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.QuotationConfirmed {
			t.Fatalf("expected no confirmation, got %+v", result)
		}
	})

	t.Run("quick replies are suppressed during the cooldown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIChatGateway(ctrl)
		uc := NewChatUseCase(repo, gateway)
		uc.cooldown = time.Minute

		pending := entities.Quotation{ID: 1, Status: entities.QuotationStatusPending}
		repo.EXPECT().ListQuotations(gomock.Any(), "s1").Return([]entities.Quotation{pending}, nil)
		repo.EXPECT().UpdateQuotationStatus(gomock.Any(), "s1", int64(1), entities.QuotationStatusConfirmed).
			Return(entities.Quotation{ID: 1, Status: entities.QuotationStatusConfirmed}, nil)

		if _, err := uc.ProcessMessage(context.Background(), "s1", "yes"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		gateway.EXPECT().SendMessage(gomock.Any(), "what else do you offer?", "s1").
			Return(interfaces.ChatReply{ResponseText: "We offer..."}, nil)

		result, err := uc.ProcessMessage(context.Background(), "s1", "what else do you offer?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ShowQuickReplies {
			t.Fatalf("expected quick replies suppressed during cooldown")
		}
	})

	t.Run("quick replies return after the cooldown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIChatGateway(ctrl)
		uc := NewChatUseCase(repo, gateway)
		uc.cooldown = 0

		pending := entities.Quotation{ID: 1, Status: entities.QuotationStatusPending}
		repo.EXPECT().ListQuotations(gomock.Any(), "s1").Return([]entities.Quotation{pending}, nil)
		repo.EXPECT().UpdateQuotationStatus(gomock.Any(), "s1", int64(1), entities.QuotationStatusConfirmed).
			Return(entities.Quotation{ID: 1, Status: entities.QuotationStatusConfirmed}, nil)

		if _, err := uc.ProcessMessage(context.Background(), "s1", "yes"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		time.Sleep(5 * time.Millisecond)
		gateway.EXPECT().SendMessage(gomock.Any(), "anything else?", "s1").
			Return(interfaces.ChatReply{ResponseText: "Sure"}, nil)

		result, err := uc.ProcessMessage(context.Background(), "s1", "anything else?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.ShowQuickReplies {
			t.Fatalf("expected quick replies after cooldown elapsed")
		}
	})
}

func TestChatUseCase_ResetSession(t *testing.T) {
	t.Run("clears the log and issues a new id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIChatGateway(ctrl)
		uc := NewChatUseCase(repo, gateway)

		repo.EXPECT().ClearSession(gomock.Any(), "s1").Return(nil)
		gateway.EXPECT().ResetSession(gomock.Any(), "s1").Return(nil)

		newID, err := uc.ResetSession(context.Background(), "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if newID == "" || newID == "s1" {
			t.Fatalf("expected a fresh session id, got %q", newID)
		}
	})

	t.Run("backend reset failure is not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIChatGateway(ctrl)
		uc := NewChatUseCase(repo, gateway)

		repo.EXPECT().ClearSession(gomock.Any(), "s1").Return(nil)
		gateway.EXPECT().ResetSession(gomock.Any(), "s1").Return(errors.New("timeout"))

		newID, err := uc.ResetSession(context.Background(), "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if newID == "" {
			t.Fatalf("expected a fresh session id")
		}
	})

	t.Run("local clear failure is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIChatGateway(ctrl)
		uc := NewChatUseCase(repo, gateway)

		repo.EXPECT().ClearSession(gomock.Any(), "s1").Return(errors.New("db"))

		_, err := uc.ResetSession(context.Background(), "s1")
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}
