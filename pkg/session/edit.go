package session

import (
	"github.com/goliatone/go-scenegen/pkg/scene"
)

// EditSession is a modal edit of one model. While it is open the controller
// refuses Add, Edit, Delete and Start.
type EditSession struct {
	owner  *Controller
	entry  *scene.ModelEntry
	closed bool
}

// Entry returns the model being edited.
func (s *EditSession) Entry() *scene.ModelEntry {
	return s.entry
}

// Index returns the current position of the edited model, or -1.
func (s *EditSession) Index() int {
	return s.owner.models.IndexOf(s.entry)
}

// Fields returns the values an editor should be prefilled with.
func (s *EditSession) Fields() scene.EntryFields {
	return s.entry.Fields()
}

// Open reports whether the session still accepts commits.
func (s *EditSession) Open() bool {
	return !s.closed
}

// Commit stores all ten fields on the model and re-validates it. When every
// field passes, the collection label is refreshed and the session closes.
// Otherwise the invalid values stay on the model and the session stays open
// so the user can correct them.
func (s *EditSession) Commit(fields scene.EntryFields) (scene.ModelEntryValidity, error) {
	if s.closed {
		return scene.ModelEntryValidity{}, ErrSessionClosed
	}
	validity := s.entry.Apply(fields)
	log := s.owner.logger.With("index", s.Index(), "filename", fields.Filename)
	if !validity.Valid() {
		log.Debug("model edit rejected", "invalid", validity.Invalid())
		return validity, nil
	}
	if err := s.owner.models.Rename(s.entry); err != nil {
		return validity, err
	}
	log.Info("model edit committed", "name", s.entry.DisplayName())
	s.finish()
	return validity, nil
}

// Cancel closes the session without further changes. Values stored by an
// earlier invalid Commit are kept.
func (s *EditSession) Cancel() error {
	if s.closed {
		return ErrSessionClosed
	}
	s.finish()
	return nil
}

func (s *EditSession) finish() {
	s.closed = true
	s.owner.close(s)
}
