package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"storefront/internal/clients"
	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

const (
	replyFallback     = "Je n'ai pas compris votre demande."
	replyNetworkError = "Erreur réseau. Veuillez réessayer."
)

type ChatUseCase interface {
	Send(ctx context.Context, sessionID, message string) (*domain.ChatMessage, error)
	History(sessionID string) ([]domain.ChatMessage, error)
}

type chatUseCase struct {
	sessions domain.SessionRepository
	catalog  domain.ProductRepository
	client   clients.GenerateClient
	log      *logrus.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewChatUseCase(sessions domain.SessionRepository, catalog domain.ProductRepository, client clients.GenerateClient, logger *logrus.Logger) ChatUseCase {
	return &chatUseCase{
		sessions: sessions,
		catalog:  catalog,
		client:   client,
		log:      logger,
		locks:    make(map[string]*sync.Mutex),
	}
}

// Send appends the user message, asks the generation endpoint for a reply and
// appends exactly one bot message, whatever the outcome. Sends within one
// session are serialized in arrival order; a second send waits for the first
// to complete.
func (uc *chatUseCase) Send(ctx context.Context, sessionID, message string) (*domain.ChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		uc.log.Warn("Use Case: Rejected blank chat message before invoking the bridge")
		return nil, errors.New("message cannot be empty")
	}

	lock := uc.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	uc.sessions.AppendChatMessage(sessionID, domain.ChatSenderUser, message)

	contextInfo, err := uc.catalogContext()
	if err != nil {
		uc.log.Errorf("Use Case: Failed to build catalog context for chat: %v", err)
		contextInfo = ""
	}

	result := uc.client.Generate(ctx, message, contextInfo)
	reply := flattenGenerateResult(result)

	botMsg := uc.sessions.AppendChatMessage(sessionID, domain.ChatSenderBot, reply)
	uc.log.Infof("Use Case: Chat turn completed (%s), bot message %d appended", result.Kind, botMsg.ID)
	return &botMsg, nil
}

func (uc *chatUseCase) History(sessionID string) ([]domain.ChatMessage, error) {
	return uc.sessions.ChatHistory(sessionID), nil
}

func (uc *chatUseCase) sessionLock(sessionID string) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	lock, ok := uc.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		uc.locks[sessionID] = lock
	}
	return lock
}

// catalogContext serializes the catalog as situational context for the
// generation endpoint, one "Name (price€)" entry per product.
func (uc *chatUseCase) catalogContext() (string, error) {
	products, err := uc.catalog.ListProducts(domain.ProductFilter{})
	if err != nil {
		return "", err
	}

	entries := make([]string, 0, len(products))
	for _, p := range products {
		entries = append(entries, fmt.Sprintf("%s (%g€)", p.Name, p.Price))
	}
	return "Produits disponibles: " + strings.Join(entries, ", ") + ".", nil
}

// flattenGenerateResult turns the tagged bridge outcome into the single
// displayable string shown as the bot's reply.
func flattenGenerateResult(result clients.GenerateResult) string {
	switch result.Kind {
	case clients.GenerateOK:
		return result.Text
	case clients.GenerateEmpty:
		return replyFallback
	case clients.GenerateServerError:
		if result.ErrMessage != "" {
			return result.ErrMessage
		}
		return fmt.Sprintf("Erreur serveur (%d)", result.StatusCode)
	default:
		return replyNetworkError
	}
}
