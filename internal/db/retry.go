package db

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// Operation is a function that performs an action and returns an error if it fails.
type Operation func() error

const DefaultMaxRetries = 3

// Try executes an operation, retrying on duplicate key errors up to
// DefaultMaxRetries times. Inserts generate a fresh ObjectID per attempt,
// so a duplicate key collision is recoverable by simply trying again.
func Try(op Operation) error {
	var err error
	for attempt := 0; attempt <= DefaultMaxRetries; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		if attempt == DefaultMaxRetries {
			break
		}
		if IsMongoDuplicateKeyError(err) {
			time.Sleep(time.Duration(50*(attempt+1)) * time.Millisecond)
		} else {
			return err
		}
	}
	return err
}

// IsMongoDuplicateKeyError checks if an error from MongoDB is a duplicate key error (code 11000).
func IsMongoDuplicateKeyError(err error) bool {
	var e mongo.WriteException
	if errors.As(err, &e) {
		for _, we := range e.WriteErrors {
			if we.Code == 11000 {
				return true
			}
		}
	}
	var bwe mongo.BulkWriteException
	if errors.As(err, &bwe) {
		for _, writeError := range bwe.WriteErrors {
			if writeError.Code == 11000 {
				return true
			}
		}
	}
	return false
}
