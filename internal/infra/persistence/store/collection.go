// Package store contains the concrete implementation of the persistence layer
// on top of gocloud.dev/docstore. Each entity lives in its own collection.
package store

import (
	"context"
	"io"

	"shopcart/internal/errors"

	"gocloud.dev/docstore"
	"gocloud.dev/gcerrors"
)

// ErrRecordNotFound is returned by Collection.Get when no document has the key.
var ErrRecordNotFound = errors.New("record not found")

// Collection is a typed view of one docstore collection whose documents are
// of type M. Key fields are whatever the collection was opened with; callers
// set them on the document passed to Get and Delete.
//
// No method takes a lock or joins a transaction with another collection.
type Collection[M any] struct {
	name string
	coll *docstore.Collection
}

// NewCollection wraps an opened docstore collection.
func NewCollection[M any](name string, coll *docstore.Collection) *Collection[M] {
	return &Collection[M]{name: name, coll: coll}
}

// Name returns the configured collection name.
func (c *Collection[M]) Name() string {
	return c.name
}

// Get fills doc from the document sharing its key fields. It covers both the
// single-key and the partition+sort key lookups.
func (c *Collection[M]) Get(ctx context.Context, doc *M) error {
	if err := c.coll.Get(ctx, doc); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return ErrRecordNotFound
		}

		return errors.Wrapf(err, "failed to get document from %s", c.name)
	}

	return nil
}

// Query returns every document whose field equals value. The index name is
// informational; the driver picks the index serving the field. Result order
// is whatever the store yields.
func (c *Collection[M]) Query(ctx context.Context, indexName, field string, value any) ([]*M, error) {
	iter := c.coll.Query().Where(docstore.FieldPath(field), "=", value).Get(ctx)

	docs, err := drain[M](ctx, iter)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s on %s", indexName, c.name)
	}

	return docs, nil
}

// Scan returns every document in the collection, unbounded.
func (c *Collection[M]) Scan(ctx context.Context) ([]*M, error) {
	docs, err := drain[M](ctx, c.coll.Query().Get(ctx))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to scan %s", c.name)
	}

	return docs, nil
}

// Put writes doc unconditionally, replacing any document with the same key.
func (c *Collection[M]) Put(ctx context.Context, doc *M) error {
	if err := c.coll.Put(ctx, doc); err != nil {
		return errors.Wrapf(err, "failed to put document into %s", c.name)
	}

	return nil
}

// Update has the same upsert semantics as Put; there is no revision check.
func (c *Collection[M]) Update(ctx context.Context, doc *M) error {
	return c.Put(ctx, doc)
}

// Delete removes the document with doc's key. A missing document is not an error.
func (c *Collection[M]) Delete(ctx context.Context, doc *M) error {
	if err := c.coll.Delete(ctx, doc); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete document from %s", c.name)
	}

	return nil
}

// BatchPut writes all docs in one action list.
func (c *Collection[M]) BatchPut(ctx context.Context, docs []*M) error {
	if len(docs) == 0 {
		return nil
	}

	actions := c.coll.Actions()
	for _, doc := range docs {
		actions.Put(doc)
	}

	if err := actions.Do(ctx); err != nil {
		return errors.Wrapf(err, "failed to batch put into %s", c.name)
	}

	return nil
}

// BatchDelete removes all docs in one action list. Actions that already ran
// stay applied when a later one fails.
func (c *Collection[M]) BatchDelete(ctx context.Context, docs []*M) error {
	if len(docs) == 0 {
		return nil
	}

	actions := c.coll.Actions()
	for _, doc := range docs {
		actions.Delete(doc)
	}

	if err := actions.Do(ctx); err != nil {
		return errors.Wrapf(err, "failed to batch delete from %s", c.name)
	}

	return nil
}

// Close releases the underlying collection.
func (c *Collection[M]) Close() error {
	return errors.WithStack(c.coll.Close())
}

func drain[M any](ctx context.Context, iter *docstore.DocumentIterator) ([]*M, error) {
	defer iter.Stop()

	docs := make([]*M, 0)
	for {
		doc := new(M)
		err := iter.Next(ctx, doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.WithStack(err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
