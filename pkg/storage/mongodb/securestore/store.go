/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package securestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/hcert/pkg/storage"
	"github.com/trustbloc/hcert/pkg/storage/mongodb"
)

const (
	collectionName = "hcert_trust"
)

type recordDocument struct {
	ID        string    `bson:"_id"`
	Scope     string    `bson:"scope"`
	Name      string    `bson:"name"`
	Blob      []byte    `bson:"blob"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Store keeps trust-store records of one scope in a MongoDB collection,
// one document per record.
type Store struct {
	mongoClient *mongodb.Client
	scope       string
}

func New(mongoClient *mongodb.Client, scope string) *Store {
	return &Store{
		mongoClient: mongoClient,
		scope:       scope,
	}
}

func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	doc := &recordDocument{}

	err := s.collection().FindOne(ctxWithTimeout, bson.M{"_id": s.documentID(name)}).Decode(doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrDataNotFound
		}

		return nil, fmt.Errorf("mongo find %q: %w", name, err)
	}

	return doc.Blob, nil
}

func (s *Store) Save(ctx context.Context, name string, blob []byte) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	doc := &recordDocument{
		ID:        s.documentID(name),
		Scope:     s.scope,
		Name:      name,
		Blob:      blob,
		UpdatedAt: time.Now().UTC(),
	}

	_, err := s.collection().ReplaceOne(ctxWithTimeout,
		bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo upsert %q: %w", name, err)
	}

	return nil
}

func (s *Store) collection() *mongo.Collection {
	return s.mongoClient.Database().Collection(collectionName)
}

func (s *Store) documentID(name string) string {
	return s.scope + "/" + name
}
