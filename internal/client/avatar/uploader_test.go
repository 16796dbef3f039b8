package avatar

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cc "github.com/ultraupload/ultraupload/internal/client/config"
)

func testConfig() *cc.Config {
	return &cc.Config{
		S3Region:        "us-east-1",
		S3AccessKey:     "minioadmin",
		S3SecretKey:     "minioadmin",
		S3BaseEndpoint:  "http://127.0.0.1:9000",
		S3Bucket:        "avatars",
		S3PublicBaseURL: "https://cdn.example.com/",
	}
}

// stubS3 replaces the AWS constructors; presign answers with target.
func stubS3(t *testing.T, target string, presignErr error) *s3.PutObjectInput {
	t.Helper()

	origLoad, origNewS3, origNewPre, origPut, origID := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient, presignPutObject, newObjectID
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		newObjectID = origID
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		require.NotNil(t, lo.Credentials)
		creds, err := lo.Credentials.Retrieve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "minioadmin", creds.AccessKeyID)
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		require.NotNil(t, opts.BaseEndpoint)
		assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
		assert.True(t, opts.UsePathStyle)
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
	newObjectID = func() string { return "id-1" }

	var got s3.PutObjectInput
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		got = *in
		if presignErr != nil {
			return nil, presignErr
		}
		return &v4.PresignedHTTPRequest{URL: target, Method: http.MethodPut}, nil
	}
	return &got
}

func newTestUploader() *Uploader {
	u := NewUploader(testConfig(), nil)
	u.now = func() time.Time { return time.Date(2025, 3, 7, 23, 0, 0, 0, time.UTC) }
	return u
}

func TestUpload_PutsObjectAndReturnsPublicURL(t *testing.T) {
	var gotBody []byte
	var gotCT, gotMethod string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotCT = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	in := stubS3(t, ts.URL+"/presigned", nil)

	url, err := newTestUploader().Upload(context.Background(), "Me.PNG", []byte("png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/avatars/2025/03/07/id-1.png", url)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "image/png", gotCT)
	assert.Equal(t, []byte("png-bytes"), gotBody)

	require.NotNil(t, in.Bucket)
	assert.Equal(t, "avatars", *in.Bucket)
	assert.Equal(t, "avatars/2025/03/07/id-1.png", *in.Key)
	assert.Equal(t, "image/png", *in.ContentType)
}

func TestUpload_Rejections(t *testing.T) {
	u := newTestUploader()

	_, err := u.Upload(context.Background(), "a.png", nil)
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = u.Upload(context.Background(), "a.pdf", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = u.Upload(context.Background(), "noext", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestUpload_PresignError(t *testing.T) {
	stubS3(t, "", errors.New("presign-put-fail"))

	_, err := newTestUploader().Upload(context.Background(), "a.jpg", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "presign-put-fail")
}

func TestUpload_ConfigError(t *testing.T) {
	stubS3(t, "", nil)
	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}

	_, err := newTestUploader().Upload(context.Background(), "a.jpg", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no config")
}

func TestUpload_StorageRejectsPut(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "SignatureDoesNotMatch", http.StatusForbidden)
	}))
	defer ts.Close()
	stubS3(t, ts.URL, nil)

	_, err := newTestUploader().Upload(context.Background(), "a.webp", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SignatureDoesNotMatch")
}

func TestObjectKeyAndContentType(t *testing.T) {
	assert.Equal(t, "avatars/2024/01/02/abc.jpg", ObjectKey(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "abc", ".jpg"))

	for _, name := range []string{"a.jpg", "a.jpeg", "a.png", "a.gif", "a.webp", "A.JPG"} {
		_, err := ContentType(name)
		assert.NoError(t, err, name)
	}
}
