package store

import (
	"context"
	"sync"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
)

type transactionStore struct {
	client *firestore.Client
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client}
}

func (s *transactionStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("transactions")
}

func (s *transactionStore) Create(ctx context.Context, uid string, tx *models.Transaction) error {
	now := time.Now()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}
	tx.UpdatedAt = now
	_, err := s.collection(uid).Doc(tx.TransactionID).Set(ctx, tx)
	return err
}

func (s *transactionStore) Get(ctx context.Context, uid, transactionID string) (*models.Transaction, error) {
	doc, err := s.collection(uid).Doc(transactionID).Get(ctx)
	if err != nil {
		return nil, err
	}
	var tx models.Transaction
	if err := doc.DataTo(&tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *transactionStore) List(ctx context.Context, uid string) ([]models.Transaction, error) {
	docs, err := s.collection(uid).OrderBy("date", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return decodeTransactions(docs)
}

// Update rewrites the caller-editable fields only; everything else on the
// document is immutable after creation.
func (s *transactionStore) Update(ctx context.Context, uid, transactionID, description string, amount float64, date string) error {
	_, err := s.collection(uid).Doc(transactionID).Update(ctx, []firestore.Update{
		{Path: "description", Value: description},
		{Path: "amount", Value: amount},
		{Path: "date", Value: date},
		{Path: "updatedAt", Value: time.Now()},
	})
	return err
}

func (s *transactionStore) Delete(ctx context.Context, uid, transactionID string) error {
	_, err := s.collection(uid).Doc(transactionID).Delete(ctx)
	return err
}

func (s *transactionStore) DeleteAll(ctx context.Context, uid string) error {
	return deleteCollection(ctx, s.client, s.collection(uid))
}

// SeedBatch writes a batch of transactions in one BulkWriter pass, used when
// seeding a new account.
func (s *transactionStore) SeedBatch(ctx context.Context, uid string, txs []models.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(txs))
	now := time.Now()

	for _, t := range txs {
		t.CreatedAt = now
		t.UpdatedAt = now

		doc := s.collection(uid).Doc(t.TransactionID)
		job, err := bw.Set(doc, t)
		if err != nil {
			bw.End()
			return err
		}
		jobs = append(jobs, job)
	}

	// Flush and close the writer, then wait on each job for errors.
	bw.End()
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return err
		}
	}

	return nil
}

// Watch registers a snapshot listener on the user's transaction collection.
// The returned channel carries the full collection on every change, starting
// with the current contents, and is closed once the listener stops. The
// cancel handle tears the listener down; calling it more than once is safe.
func (s *transactionStore) Watch(ctx context.Context, uid string) (<-chan []models.Transaction, func(), error) {
	watchCtx, cancel := context.WithCancel(ctx)
	iter := s.collection(uid).Snapshots(watchCtx)

	ch := make(chan []models.Transaction, 1)
	go func() {
		defer close(ch)
		for {
			snap, err := iter.Next()
			if err != nil {
				// Cancelled or stream broken; either way the subscription ends.
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				return
			}
			txs, err := decodeTransactions(docs)
			if err != nil {
				return
			}
			select {
			case ch <- txs:
			case <-watchCtx.Done():
				return
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			cancel()
			iter.Stop()
		})
	}
	return ch, stop, nil
}

func decodeTransactions(docs []*firestore.DocumentSnapshot) ([]models.Transaction, error) {
	txs := make([]models.Transaction, 0, len(docs))
	for _, d := range docs {
		var tx models.Transaction
		if err := d.DataTo(&tx); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// deleteCollection removes every document in a collection with one
// BulkWriter pass. Shared by the full-reset path of every store.
func deleteCollection(ctx context.Context, client *firestore.Client, col *firestore.CollectionRef) error {
	docs, err := col.Documents(ctx).GetAll()
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}

	bw := client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(docs))
	for _, d := range docs {
		job, err := bw.Delete(d.Ref)
		if err != nil {
			bw.End()
			return err
		}
		jobs = append(jobs, job)
	}
	bw.End()
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return err
		}
	}
	return nil
}
