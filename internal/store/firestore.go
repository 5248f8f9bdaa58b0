package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"widgetconfig/internal/errs"
	"widgetconfig/internal/widget"
)

// FirestoreStore keeps widgets under <root>/<namespace>/widgets/<id>.
type FirestoreStore struct {
	client *firestore.Client
	root   string
}

func NewFirestoreClient(ctx context.Context, projectID string) (*firestore.Client, error) {
	return firestore.NewClient(ctx, projectID)
}

func NewFirestoreStore(client *firestore.Client, root string) *FirestoreStore {
	return &FirestoreStore{client: client, root: root}
}

func (s *FirestoreStore) collection(ns string) *firestore.CollectionRef {
	return s.client.Collection(s.root).Doc(ns).Collection("widgets")
}

func (s *FirestoreStore) Load(ctx context.Context, ns, widgetID string) (*widget.Configuration, error) {
	doc, err := s.collection(ns).Doc(widgetID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("widget settings not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get widget settings", err)
	}
	var cfg widget.Configuration
	if err := doc.DataTo(&cfg); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse widget settings", err)
	}
	return &cfg, nil
}

func (s *FirestoreStore) Save(ctx context.Context, ns, widgetID string, cfg widget.Configuration) error {
	if _, err := s.collection(ns).Doc(widgetID).Set(ctx, cfg); err != nil {
		return errs.NewDatabaseError("write", "failed to save widget settings", err)
	}
	return nil
}

// Delete reports NotFound for absent documents; Firestore itself treats
// deleting a missing document as success.
func (s *FirestoreStore) Delete(ctx context.Context, ns, widgetID string) error {
	ref := s.collection(ns).Doc(widgetID)
	if _, err := ref.Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return errs.NewNotFoundError("widget settings not found")
		}
		return errs.NewDatabaseError("delete", "failed to delete widget settings", err)
	}
	return nil
}

func (s *FirestoreStore) List(ctx context.Context, ns string) ([]string, error) {
	iter := s.collection(ns).DocumentRefs(ctx)
	var ids []string
	for {
		ref, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list widget settings", err)
		}
		ids = append(ids, ref.ID)
	}
	return ids, nil
}
