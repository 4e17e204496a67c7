package helpers

import (
	"bytes"
	"io"
	"net/http"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

type fakeObject struct {
	data        []byte
	contentType string
}

// FakeS3 is an in-memory bucket implementing the calls the media store makes.
// Unimplemented S3API methods panic through the nil embedded interface.
type FakeS3 struct {
	s3iface.S3API

	mu      sync.Mutex
	objects map[string]fakeObject
	// Fail makes every call return a 500 from the "service".
	Fail bool
}

func NewFakeS3() *FakeS3 {
	return &FakeS3{objects: make(map[string]fakeObject)}
}

func (f *FakeS3) failure() error {
	return awserr.NewRequestFailure(awserr.New("InternalError", "backend down", nil), http.StatusInternalServerError, "req")
}

func notFound(code string) error {
	return awserr.NewRequestFailure(awserr.New(code, "not found", nil), http.StatusNotFound, "req")
}

func (f *FakeS3) PutObjectWithContext(_ aws.Context, in *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	if f.Fail {
		return nil, f.failure()
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.StringValue(in.Key)] = fakeObject{data: data, contentType: aws.StringValue(in.ContentType)}
	return &s3.PutObjectOutput{}, nil
}

func (f *FakeS3) GetObjectWithContext(_ aws.Context, in *s3.GetObjectInput, _ ...request.Option) (*s3.GetObjectOutput, error) {
	if f.Fail {
		return nil, f.failure()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	obj, ok := f.objects[aws.StringValue(in.Key)]
	if !ok {
		return nil, notFound(s3.ErrCodeNoSuchKey)
	}
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(obj.data)),
		ContentType:   aws.String(obj.contentType),
		ContentLength: aws.Int64(int64(len(obj.data))),
	}, nil
}

func (f *FakeS3) HeadObjectWithContext(_ aws.Context, in *s3.HeadObjectInput, _ ...request.Option) (*s3.HeadObjectOutput, error) {
	if f.Fail {
		return nil, f.failure()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	obj, ok := f.objects[aws.StringValue(in.Key)]
	if !ok {
		return nil, notFound("NotFound")
	}
	return &s3.HeadObjectOutput{
		ContentType:   aws.String(obj.contentType),
		ContentLength: aws.Int64(int64(len(obj.data))),
	}, nil
}

func (f *FakeS3) DeleteObjectWithContext(_ aws.Context, in *s3.DeleteObjectInput, _ ...request.Option) (*s3.DeleteObjectOutput, error) {
	if f.Fail {
		return nil, f.failure()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, aws.StringValue(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

// Object returns the stored bytes for key.
func (f *FakeS3) Object(key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	obj, ok := f.objects[key]
	return obj.data, ok
}
