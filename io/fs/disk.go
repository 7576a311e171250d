package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/datarhei/sitesrv/log"
)

// DiskConfig is the config required to create a new disk
// filesystem.
type DiskConfig struct {
	// Dir is the path to the directory to serve from. It doesn't
	// need to exist.
	Dir string

	// For logging, optional
	Logger log.Logger
}

// diskFileInfo implements the FileInfo interface
type diskFileInfo struct {
	name  string
	finfo os.FileInfo
}

func (fi *diskFileInfo) Name() string {
	return fi.name
}

func (fi *diskFileInfo) Size() int64 {
	return fi.finfo.Size()
}

func (fi *diskFileInfo) ModTime() time.Time {
	return fi.finfo.ModTime()
}

func (fi *diskFileInfo) IsDir() bool {
	return fi.finfo.IsDir()
}

// diskFilesystem implements the ReadFilesystem interface
type diskFilesystem struct {
	dir string

	// Logger from the config
	logger log.Logger
}

// NewDiskFilesystem returns a new read-only filesystem that is backed by a
// directory on disk.
func NewDiskFilesystem(config DiskConfig) (ReadFilesystem, error) {
	fs := &diskFilesystem{
		logger: config.Logger,
	}

	if fs.logger == nil {
		fs.logger = log.New("")
	}

	if len(config.Dir) == 0 {
		return nil, fmt.Errorf("invalid base path provided")
	}

	dir, err := filepath.Abs(config.Dir)
	if err != nil {
		return nil, fmt.Errorf("invalid base path '%s': %w", config.Dir, err)
	}

	fs.dir = dir
	fs.logger = fs.logger.WithFields(log.Fields{
		"type": "disk",
		"dir":  fs.dir,
	})

	return fs, nil
}

func (fs *diskFilesystem) Base() string {
	return fs.dir
}

// resolve maps the path into the base directory. The path is cleaned as an
// absolute path first, so ".." can't leave the base directory.
func (fs *diskFilesystem) resolve(path string) string {
	return filepath.Join(fs.dir, filepath.Clean("/"+path))
}

func (fs *diskFilesystem) ReadFile(path string) ([]byte, error) {
	path = fs.resolve(path)

	data, err := os.ReadFile(path)
	if err != nil {
		fs.logger.Debug().WithError(err).Log("Reading file failed")
		return nil, err
	}

	return data, nil
}

func (fs *diskFilesystem) Stat(path string) (FileInfo, error) {
	path = fs.resolve(path)

	finfo, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	return &diskFileInfo{
		name:  path,
		finfo: finfo,
	}, nil
}
