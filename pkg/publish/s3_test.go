package publish

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// stubS3 records PutObject calls in place of a real client.
type stubS3 struct {
	input *s3.PutObjectInput
	err   error
}

func (s *stubS3) PutObject(_ context.Context, input *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	s.input = input
	if s.err != nil {
		return nil, s.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3StoreSave(t *testing.T) {
	stub := &stubS3{}
	store := &S3Store{client: stub, bucket: "snapshots", prefix: "site/"}

	err := store.Save(context.Background(), "index.html", "text/html; charset=utf-8", strings.NewReader("<html></html>"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if stub.input == nil {
		t.Fatal("PutObject not called")
	}

	if got := *stub.input.Bucket; got != "snapshots" {
		t.Errorf("bucket = %q, want %q", got, "snapshots")
	}
	if got := *stub.input.Key; got != "site/index.html" {
		t.Errorf("key = %q, want %q", got, "site/index.html")
	}
	if got := *stub.input.ContentType; got != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", got)
	}
	body, err := io.ReadAll(stub.input.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if string(body) != "<html></html>" {
		t.Errorf("body = %q", body)
	}
	if _, ok := stub.input.Metadata["published-at"]; !ok {
		t.Error("missing published-at metadata")
	}
}

func TestS3StoreSizeLimit(t *testing.T) {
	stub := &stubS3{}
	store := &S3Store{client: stub, bucket: "snapshots", maxSize: 8}

	err := store.Save(context.Background(), "big.html", "text/html", strings.NewReader(strings.Repeat("x", 100)))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("Save() error = %v, want ErrTooLarge", err)
	}
	if stub.input != nil {
		t.Error("PutObject called for oversized snapshot")
	}
}

func TestS3StoreSaveError(t *testing.T) {
	stub := &stubS3{err: errors.New("denied")}
	store := &S3Store{client: stub, bucket: "snapshots"}

	err := store.Save(context.Background(), "index.html", "text/html", strings.NewReader("x"))
	if err == nil || !strings.Contains(err.Error(), "s3 put failed") {
		t.Errorf("Save() error = %v, want s3 put failure", err)
	}
	if !errors.Is(err, stub.err) {
		t.Error("underlying error not wrapped")
	}
}

func TestS3StoreURL(t *testing.T) {
	store := &S3Store{bucket: "snapshots", prefix: "site/"}
	if got := store.URL("index.html"); got != "s3://snapshots/site/index.html" {
		t.Errorf("URL = %q", got)
	}

	unprefixed := &S3Store{bucket: "snapshots"}
	if got := unprefixed.URL("index.html"); got != "s3://snapshots/index.html" {
		t.Errorf("URL = %q", got)
	}
}

func TestNormalizePrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"site", "site/"},
		{"site/", "site/"},
		{"a/b", "a/b/"},
	}
	for _, tt := range tests {
		if got := normalizePrefix(tt.in); got != tt.want {
			t.Errorf("normalizePrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
