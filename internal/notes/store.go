package notes

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	eventTypesCollection     = "eventTypes"
	personNotesCollection    = "personNotes"
	parentContactsCollection = "parentContacts"
	eventNotesCollection     = "eventNotes"
)

// Store is the document store behind notes and event types.
type Store interface {
	Enabled() bool

	UpsertEventType(ctx context.Context, et *EventType) error
	GetEventType(ctx context.Context, name string) (*EventType, error)
	ListEventTypes(ctx context.Context) ([]EventType, error)
	DeleteEventType(ctx context.Context, name string) error

	AddPersonNote(ctx context.Context, n *PersonNote) error
	ListPersonNotes(ctx context.Context, personID uint) ([]PersonNote, error)
	DeletePersonNote(ctx context.Context, id string) error

	AddParentContact(ctx context.Context, pc *ParentContact) error
	ListParentContacts(ctx context.Context, personID uint) ([]ParentContact, error)
	DeleteParentContact(ctx context.Context, id string) error

	AddEventNote(ctx context.Context, n *EventNote) error
	ListEventNotes(ctx context.Context, eventID uint) ([]EventNote, error)
	CountEventNotes(ctx context.Context, eventID uint) (int64, error)
	DeleteEventNote(ctx context.Context, id string) error
}

type firestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps a Firestore client. A nil client means the
// document store is not configured and every call reports disabled.
func NewFirestoreStore(client *firestore.Client) Store {
	return &firestoreStore{client: client}
}

func (s *firestoreStore) Enabled() bool {
	return s.client != nil
}

// ===========================
// 🏷 Event Types (keyed by name)

func (s *firestoreStore) UpsertEventType(ctx context.Context, et *EventType) error {
	_, err := s.client.Collection(eventTypesCollection).Doc(et.EventType).Set(ctx, et)
	return err
}

func (s *firestoreStore) GetEventType(ctx context.Context, name string) (*EventType, error) {
	doc, err := s.client.Collection(eventTypesCollection).Doc(name).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var et EventType
	if err := doc.DataTo(&et); err != nil {
		return nil, err
	}
	return &et, nil
}

func (s *firestoreStore) ListEventTypes(ctx context.Context) ([]EventType, error) {
	iter := s.client.Collection(eventTypesCollection).Documents(ctx)
	defer iter.Stop()

	var out []EventType
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var et EventType
		if err := doc.DataTo(&et); err != nil {
			return nil, err
		}
		out = append(out, et)
	}
	return out, nil
}

func (s *firestoreStore) DeleteEventType(ctx context.Context, name string) error {
	_, err := s.client.Collection(eventTypesCollection).Doc(name).Delete(ctx)
	return err
}

// ===========================
// 📝 Person Notes

func (s *firestoreStore) AddPersonNote(ctx context.Context, n *PersonNote) error {
	n.ID = uuid.NewString()
	_, err := s.client.Collection(personNotesCollection).Doc(n.ID).Set(ctx, n)
	return err
}

func (s *firestoreStore) ListPersonNotes(ctx context.Context, personID uint) ([]PersonNote, error) {
	iter := s.client.Collection(personNotesCollection).
		Where("personId", "==", int64(personID)).
		Documents(ctx)
	defer iter.Stop()

	var out []PersonNote
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var n PersonNote
		if err := doc.DataTo(&n); err != nil {
			return nil, err
		}
		n.ID = doc.Ref.ID
		out = append(out, n)
	}
	return out, nil
}

func (s *firestoreStore) DeletePersonNote(ctx context.Context, id string) error {
	_, err := s.client.Collection(personNotesCollection).Doc(id).Delete(ctx)
	return err
}

// ===========================
// ☎️ Parent Contacts

func (s *firestoreStore) AddParentContact(ctx context.Context, pc *ParentContact) error {
	pc.ID = uuid.NewString()
	_, err := s.client.Collection(parentContactsCollection).Doc(pc.ID).Set(ctx, pc)
	return err
}

func (s *firestoreStore) ListParentContacts(ctx context.Context, personID uint) ([]ParentContact, error) {
	iter := s.client.Collection(parentContactsCollection).
		Where("personId", "==", int64(personID)).
		Documents(ctx)
	defer iter.Stop()

	var out []ParentContact
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var pc ParentContact
		if err := doc.DataTo(&pc); err != nil {
			return nil, err
		}
		pc.ID = doc.Ref.ID
		out = append(out, pc)
	}
	return out, nil
}

func (s *firestoreStore) DeleteParentContact(ctx context.Context, id string) error {
	_, err := s.client.Collection(parentContactsCollection).Doc(id).Delete(ctx)
	return err
}

// ===========================
// 📋 Event Notes

func (s *firestoreStore) AddEventNote(ctx context.Context, n *EventNote) error {
	n.ID = uuid.NewString()
	_, err := s.client.Collection(eventNotesCollection).Doc(n.ID).Set(ctx, n)
	return err
}

func (s *firestoreStore) ListEventNotes(ctx context.Context, eventID uint) ([]EventNote, error) {
	iter := s.client.Collection(eventNotesCollection).
		Where("eventId", "==", int64(eventID)).
		Documents(ctx)
	defer iter.Stop()

	var out []EventNote
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var n EventNote
		if err := doc.DataTo(&n); err != nil {
			return nil, err
		}
		n.ID = doc.Ref.ID
		out = append(out, n)
	}
	return out, nil
}

func (s *firestoreStore) CountEventNotes(ctx context.Context, eventID uint) (int64, error) {
	docs, err := s.client.Collection(eventNotesCollection).
		Where("eventId", "==", int64(eventID)).
		Select().
		Documents(ctx).GetAll()
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

func (s *firestoreStore) DeleteEventNote(ctx context.Context, id string) error {
	_, err := s.client.Collection(eventNotesCollection).Doc(id).Delete(ctx)
	return err
}
