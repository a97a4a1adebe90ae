/*
Copyright © 2017 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/url"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/gcsblob"
	"gocloud.dev/blob/s3blob"
	"gocloud.dev/gcp"
)

// OpenRaster reads the raster at path if it exists on the local
// filesystem, and otherwise falls back to fetching it from the cloud
// object store named by bucketURL (format "gs://bucket" or
// "s3://bucket"), using path as the blob key. This mirrors the
// original prototype's safe_open, which let a deployment run against
// local test fixtures without needing cloud credentials.
func OpenRaster(ctx context.Context, path, bucketURL string) ([]byte, error) {
	if data, err := ioutil.ReadFile(path); err == nil {
		return data, nil
	}
	if bucketURL == "" {
		return nil, fmt.Errorf("ingest: %s not found locally and no fallback bucket configured", path)
	}
	bucket, err := openBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("ingest: opening fallback bucket %s: %w", bucketURL, err)
	}
	return readBlob(ctx, bucket, path)
}

// readBlob reads the whole named blob out of bucket.
func readBlob(ctx context.Context, bucket *blob.Bucket, key string) ([]byte, error) {
	var buf bytes.Buffer
	r, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, fmt.Errorf("ingest: reading blob key %s: %w", key, err)
	}
	defer r.Close()
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, fmt.Errorf("ingest: reading blob key %s: %w", key, err)
	}
	return buf.Bytes(), nil
}

// openBucket opens the blob storage bucket named by bucketURL, in the
// form "provider://name" where provider is "file", "gs", or "s3".
func openBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	u, err := url.Parse(bucketURL)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "file":
		return fileblob.OpenBucket(u.Hostname(), nil)
	case "gs":
		return gsBucket(ctx, u.Hostname())
	case "s3":
		return s3Bucket(u.Hostname())
	default:
		return nil, fmt.Errorf("ingest: unsupported bucket provider %q", u.Scheme)
	}
}

func gsBucket(ctx context.Context, name string) (*blob.Bucket, error) {
	creds, err := gcp.DefaultCredentials(ctx)
	if err != nil {
		return nil, err
	}
	c, err := gcp.NewHTTPClient(gcp.DefaultTransport(), gcp.CredentialsTokenSource(creds))
	if err != nil {
		return nil, err
	}
	return gcsblob.OpenBucket(ctx, c, name, nil)
}

func s3Bucket(name string) (*blob.Bucket, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-2"
	}
	cfg := &aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewEnvCredentials(),
	}
	sess := session.Must(session.NewSession(cfg))
	return s3blob.OpenBucket(context.Background(), sess, name, nil)
}
