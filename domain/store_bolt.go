package domain

import (
	"go.etcd.io/bbolt"
)

var (
	boltBucket = []byte("pos")
	boltKey    = []byte("orders")
)

// BoltStore keeps the order log blob in a local bbolt file,
// one bucket, one key.
type BoltStore struct {
	db *bbolt.DB
}

func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Read() ([]byte, error) {
	var data []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(boltBucket).Get(boltKey); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})

	return data, err
}

func (s *BoltStore) Write(data []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(boltBucket).Put(boltKey, data)
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
