package storage

import (
	"errors"
	"io"
	"testing"
)

type stubDisk struct{}

func (stubDisk) Put(string, []byte, PutOptions) error    { return nil }
func (stubDisk) Get(string) ([]byte, error)              { return nil, nil }
func (stubDisk) GetStream(string) (io.ReadCloser, error) { return nil, nil }
func (stubDisk) Exists(string) bool                      { return false }
func (stubDisk) URL(string) string                       { return "" }
func (stubDisk) Delete(string) error                     { return nil }

func TestConnectFailsWhenDefaultS3CannotBoot(t *testing.T) {
	err := connect("s3", true, func() (Disk, error) {
		return nil, errors.New("resolve credentials: no providers")
	})
	if err == nil {
		t.Fatal("expected boot to fail when the default disk cannot come up")
	}
}

func TestConnectFailsWhenDefaultS3NotConfigured(t *testing.T) {
	err := connect("s3", false, func() (Disk, error) {
		t.Fatal("s3 factory called without a bucket configured")
		return nil, nil
	})
	if err == nil {
		t.Fatal("expected boot to fail when the default disk has no config")
	}
}

func TestConnectToleratesSecondaryS3Failure(t *testing.T) {
	err := connect("local", true, func() (Disk, error) {
		return nil, errors.New("resolve credentials: no providers")
	})
	if err != nil {
		t.Fatalf("local default must survive an s3 boot failure, got %v", err)
	}
	if Default() == nil {
		t.Fatal("default disk not registered")
	}
}

func TestConnectRegistersS3Default(t *testing.T) {
	err := connect("s3", true, func() (Disk, error) {
		return stubDisk{}, nil
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if _, ok := Default().(stubDisk); !ok {
		t.Fatalf("default disk = %T, want stubDisk", Default())
	}
}
