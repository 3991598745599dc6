package checksum

import (
	"errors"
	"testing"

	"github.com/dirsum/dirsum/internal/files/filesystem"
	"github.com/dirsum/dirsum/pkg/dirsum"
)

func newTestCalculator() (*Calculator, *filesystem.MemoryFileSystem) {
	fs := filesystem.NewMemoryFileSystem("/data")
	return NewWithFS(fs), fs
}

func TestComputeChecksum_KnownVectors(t *testing.T) {
	calc, fs := newTestCalculator()
	fs.AddFile("fixture.txt", "test")

	// Published reference digests for the 4-byte content "test".
	tests := []struct {
		name     string
		kind     dirsum.ChecksumKind
		expected string
	}{
		{
			name:     "MD5",
			kind:     dirsum.ChecksumMD5,
			expected: "098f6bcd4621d373cade4e832627b4f6",
		},
		{
			name:     "SHA1",
			kind:     dirsum.ChecksumSHA1,
			expected: "a94a8fe5ccb19ba61c4c0873d391e987982fbbd3",
		},
		{
			name:     "SHA256",
			kind:     dirsum.ChecksumSHA256,
			expected: "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		},
		{
			name:     "SHA512",
			kind:     dirsum.ChecksumSHA512,
			expected: "ee26b0dd4af7e749aa1a8ee3c10ae9923f618980772e473f8819a5d4940e0db27ac185f8a0e1d5f84f88bc887fd67b143732c304cc5fa9ad8e6f57f50028a8ff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := calc.ComputeChecksum("/data/fixture.txt", tt.kind)
			if err != nil {
				t.Fatalf("ComputeChecksum failed: %v", err)
			}
			if digest != tt.expected {
				t.Errorf("digest = %s, want %s", digest, tt.expected)
			}
			if len(digest) != tt.kind.HexLength() {
				t.Errorf("digest length = %d, want %d", len(digest), tt.kind.HexLength())
			}
		})
	}
}

func TestComputeChecksum_EmptyFile(t *testing.T) {
	calc, fs := newTestCalculator()
	fs.AddFile("empty.txt", "")

	digest, err := calc.ComputeChecksum("/data/empty.txt", dirsum.ChecksumSHA256)
	if err != nil {
		t.Fatalf("ComputeChecksum failed: %v", err)
	}
	if digest != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Errorf("unexpected digest for empty content: %s", digest)
	}
}

func TestComputeChecksum_MissingFile(t *testing.T) {
	calc, _ := newTestCalculator()

	digest, err := calc.ComputeChecksum("/data/nope.txt", dirsum.ChecksumSHA256)
	if err != nil {
		t.Fatalf("missing file must not produce an error, got: %v", err)
	}
	if digest != "" {
		t.Errorf("missing file must yield the empty sentinel, got %q", digest)
	}
}

func TestComputeChecksum_PermissionDenied(t *testing.T) {
	calc, fs := newTestCalculator()
	fs.AddFile("secret.txt", "hidden")
	fs.DenyAccess("secret.txt")

	digest, err := calc.ComputeChecksum("/data/secret.txt", dirsum.ChecksumMD5)
	if err != nil {
		t.Fatalf("permission failure must not produce an error, got: %v", err)
	}
	if digest != "" {
		t.Errorf("unreadable file must yield the empty sentinel, got %q", digest)
	}
}

func TestComputeChecksum_ReadFailureMidStream(t *testing.T) {
	calc, fs := newTestCalculator()
	fs.AddFile("flaky.txt", "content")
	fs.FailReads("flaky.txt")

	digest, err := calc.ComputeChecksum("/data/flaky.txt", dirsum.ChecksumSHA1)
	if err != nil {
		t.Fatalf("I/O failure must not produce an error, got: %v", err)
	}
	if digest != "" {
		t.Errorf("failed read must yield the empty sentinel, got %q", digest)
	}
}

func TestComputeChecksum_UnsupportedKind(t *testing.T) {
	calc, fs := newTestCalculator()
	fs.AddFile("fixture.txt", "test")

	digest, err := calc.ComputeChecksum("/data/fixture.txt", dirsum.ChecksumKind(42))
	if err == nil {
		t.Fatal("expected error for unsupported checksum kind")
	}
	if !errors.Is(err, dirsum.ErrUnsupportedChecksumKind) {
		t.Errorf("error = %v, want ErrUnsupportedChecksumKind", err)
	}
	if digest != "" {
		t.Errorf("failed computation must yield empty digest, got %q", digest)
	}
}

func TestComputeChecksum_Deterministic(t *testing.T) {
	calc, fs := newTestCalculator()
	fs.AddFile("stable.txt", "same bytes every time")

	first, err := calc.ComputeChecksum("/data/stable.txt", dirsum.ChecksumSHA512)
	if err != nil {
		t.Fatalf("ComputeChecksum failed: %v", err)
	}
	second, err := calc.ComputeChecksum("/data/stable.txt", dirsum.ChecksumSHA512)
	if err != nil {
		t.Fatalf("ComputeChecksum failed: %v", err)
	}
	if first != second {
		t.Errorf("ComputeChecksum is not deterministic: %s != %s", first, second)
	}
}

func TestSum(t *testing.T) {
	digest, err := Sum([]byte("test"), dirsum.ChecksumMD5)
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	if digest != "098f6bcd4621d373cade4e832627b4f6" {
		t.Errorf("unexpected digest: %s", digest)
	}

	if _, err := Sum(nil, dirsum.ChecksumKind(-1)); !errors.Is(err, dirsum.ErrUnsupportedChecksumKind) {
		t.Errorf("error = %v, want ErrUnsupportedChecksumKind", err)
	}
}

func TestNewWithFS_NilProvider(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for nil fsProvider")
		}
	}()
	NewWithFS(nil)
}
