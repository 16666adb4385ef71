package dashboard

import "github.com/Veraticus/lifedash/internal/model"

// AddMessage appends to the chat log and returns the stored message.
// The chat log lives for the session only and is never persisted.
func (s *Store) AddMessage(role model.Role, content string, module *model.Module) model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := model.Message{
		ID:        s.newID(),
		Role:      role,
		Content:   content,
		Timestamp: s.now(),
	}
	if module != nil {
		m := *module
		msg.Module = &m
	}
	s.messages = append(s.messages, msg)
	return msg
}

// Messages returns the chat log, oldest first.
func (s *Store) Messages() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSlice(s.messages)
}

// ClearMessages empties the chat log.
func (s *Store) ClearMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}
