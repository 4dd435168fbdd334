package live

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"innovest/pkg/logger"
)

// FirestoreSource backs subscriptions with Firestore snapshot listeners on the
// messages collection.
type FirestoreSource struct {
	client *firestore.Client
}

func NewFirestoreSource(client *firestore.Client) *FirestoreSource {
	return &FirestoreSource{
		client: client,
	}
}

// Subscribe pumps snapshot updates into notify until ctx is canceled. Every
// insert or update in scope produces a snapshot, including the initial result
// set, which yields one redundant refresh on registration.
func (s *FirestoreSource) Subscribe(ctx context.Context, conversationID string, notify func()) {
	query := s.client.Collection("messages").Query
	if conversationID != "" {
		query = query.Where("conversationId", "==", conversationID)
	}

	go func() {
		snapshots := query.Snapshots(ctx)
		defer snapshots.Stop()

		for {
			_, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.Error("Snapshot listener failed (conversation=%q): %v", conversationID, err)
				}
				return
			}
			notify()
		}
	}()
}
