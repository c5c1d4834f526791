package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"empath-llm/internal/domain"
)

// ErrSessionNotFound indica que el ID de sesion no existe en el registro.
var ErrSessionNotFound = errors.New("session not found")

// Session es duena exclusiva de su ConversationHistory. El lock interno
// permite que deployments multi-thread accedan a la misma sesion sin
// compartir mutacion desprotegida.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu              sync.Mutex
	culturalContext string
	history         domain.ConversationHistory
}

// CulturalContext devuelve el contexto cultural vigente de la sesion.
func (s *Session) CulturalContext() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.culturalContext
}

// SetCulturalContext cambia el contexto para los mensajes siguientes.
func (s *Session) SetCulturalContext(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.culturalContext = name
}

// AppendRecord agrega un registro al historial en orden de llegada.
func (s *Session) AppendRecord(record domain.EmotionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Append(record)
}

// Records devuelve una copia del historial completo.
func (s *Session) Records() []domain.EmotionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Records()
}

// RecentRecords devuelve una copia del sufijo mas reciente.
func (s *Session) RecentRecords(n int) []domain.EmotionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.LastN(n)
}

// MessageCount devuelve cuantos registros acumula la sesion.
func (s *Session) MessageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Len()
}

// SessionManager registra sesiones en memoria. No hay persistencia: una
// sesion vive lo que vive el proceso.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionManager crea el registro de sesiones.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session)}
}

// Create abre una sesion nueva con su contexto cultural inicial.
func (m *SessionManager) Create(culturalContext string) *Session {
	if culturalContext == "" {
		culturalContext = domain.DefaultCulture
	}
	session := &Session{
		ID:              uuid.NewString(),
		CreatedAt:       time.Now().UTC(),
		culturalContext: culturalContext,
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	return session
}

// Get busca una sesion por ID.
func (m *SessionManager) Get(id string) (*Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}
