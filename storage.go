package padlock

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	shell "github.com/ipfs/go-ipfs-api"
	bolt "go.etcd.io/bbolt"
)

// StorageEngine type for enum
type StorageEngine int

const (
	// FileEngine stores each bundle as its own JSON file
	FileEngine StorageEngine = iota
	// BoltEngine stores bundles as values in a BoltDB bucket
	BoltEngine
	// IPFSEngine stores bundles as content-addressed blobs on an IPFS node
	IPFSEngine
)

const (
	// DefaultStorageEngine is used to set the storage engine if none is set
	// in storage options
	DefaultStorageEngine = FileEngine
	// DefaultBoltFilePath is the default path and file name for BoltDB storage
	DefaultBoltFilePath = "padlock.boltdb"
	// DefaultTLB is the name of the top level bucket for BoltDB
	DefaultTLB = "padlock"
	// DefaultIPFSNodeURL is the default API endpoint for a local IPFS node
	DefaultIPFSNodeURL = "localhost:5001"
)

// Storage is the primary interface for persisting and reloading cipher
// bundles. Save returns the final location of the bundle: the path it was
// given for path-addressed engines, or a content hash for content-addressed
// ones. Load takes whatever Save returned.
type Storage interface {
	Save(path string, b Bundle) (string, error)
	Load(path string) (Bundle, error)
	Close() error
}

// StorageOptions are used to pass in initialization settings
type StorageOptions struct {
	Engine   StorageEngine
	FilePath string
	NodeURL  string
}

// NewStorage initiates a new storage Interface
func NewStorage(opts StorageOptions) (Storage, error) {
	switch opts.Engine {
	case FileEngine:
		return FileStorage{}, nil
	case BoltEngine:
		return newBoltStorage(opts)
	case IPFSEngine:
		return newIPFSStorage(opts), nil
	default:
		return nil, errors.New("invalid engine type")
	}
}

// FileStorage is the default Storage implementation. Each bundle lives in its
// own file; no handle is held between calls.
type FileStorage struct{}

// Save serializes the bundle and writes it to path, overwriting any existing
// file. The write goes to a temp file in the target directory first and is
// renamed into place, so a failed write never leaves a truncated bundle
// behind at path.
func (s FileStorage) Save(path string, b Bundle) (string, error) {
	dir := filepath.Dir(path)
	tmp, err := ioutil.TempFile(dir, ".padlock-*")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(b.ToJSON()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return path, nil
}

// Load reads and parses the bundle file at path.
func (s FileStorage) Load(path string) (Bundle, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Bundle{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Bundle{}, err
	}
	return NewBundleFromJSON(data)
}

// Close is a no-op for FileStorage.
func (s FileStorage) Close() error {
	return nil
}

// newBoltStorage takes StorageOptions as an argument and returns a BoltDB
// backed implementation of the Storage interface.
func newBoltStorage(opts StorageOptions) (Storage, error) {
	tlb := DefaultTLB
	fp := DefaultBoltFilePath
	if opts.FilePath != "" {
		fp = opts.FilePath
	}
	db, err := bolt.Open(fp, 0666, nil)
	if err != nil {
		return nil, err
	}

	// ensure that top level bucket exists
	if err := db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(tlb)); err != nil {
			return fmt.Errorf("error creating bucket: %s", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return BoltStorage{DB: db, TLB: tlb}, nil
}

// BoltStorage is a struct that conforms to the Storage interface for using
// BoltDB. DB is a reference to a boltDB instance and TLB stands for "top
// level bucket". Bundles are stored as JSON values keyed by path.
type BoltStorage struct {
	DB  *bolt.DB
	TLB string
}

// Save writes the serialized bundle under the path key. BoltDB transactions
// are atomic, so a failed write leaves no partial value.
func (s BoltStorage) Save(path string, b Bundle) (string, error) {
	err := s.DB.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(s.TLB)).Put([]byte(path), b.ToJSON())
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// Load reads and parses the bundle stored under the path key.
func (s BoltStorage) Load(path string) (Bundle, error) {
	var data []byte
	if err := s.DB.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(s.TLB)).Get([]byte(path))
		if v != nil {
			data = append(data, v...)
		}
		return nil
	}); err != nil {
		return Bundle{}, err
	}
	if data == nil {
		return Bundle{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return NewBundleFromJSON(data)
}

// Close is used to close the Bolt DB engine and returns an error
func (s BoltStorage) Close() error {
	return s.DB.Close()
}

// newIPFSStorage returns an IPFS backed implementation of the Storage
// interface pointed at the node API in opts, or the default local node.
func newIPFSStorage(opts StorageOptions) Storage {
	url := DefaultIPFSNodeURL
	if opts.NodeURL != "" {
		url = opts.NodeURL
	}
	return IPFSStorage{Shell: shell.NewShell(url)}
}

// IPFSStorage conforms to the Storage interface using an IPFS node as the
// backend. Storage is content addressed: Save ignores the requested path and
// returns the hash of the added bundle, which is the path to Load it by.
type IPFSStorage struct {
	Shell *shell.Shell
}

// Save adds the serialized bundle to the IPFS node and returns its hash.
func (s IPFSStorage) Save(path string, b Bundle) (string, error) {
	return s.Shell.Add(bytes.NewReader(b.ToJSON()))
}

// Load cats the bundle content for the given hash and parses it.
func (s IPFSStorage) Load(path string) (Bundle, error) {
	rc, err := s.Shell.Cat(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	defer rc.Close()
	data, err := ioutil.ReadAll(rc)
	if err != nil {
		return Bundle{}, err
	}
	return NewBundleFromJSON(data)
}

// Close is a no-op for IPFSStorage.
func (s IPFSStorage) Close() error {
	return nil
}
