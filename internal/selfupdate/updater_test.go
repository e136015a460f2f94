package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseAssetName(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "studylog_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "studylog_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "studylog_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "studylog_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "studylog_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "studylog_Windows_x86_64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := releaseAssetName(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecksumFor(t *testing.T) {
	listing := []byte("abc123  studylog_Linux_x86_64.tar.gz\ndef456  studylog_Darwin_all.tar.gz\n\nmalformed line with too many fields here\n")

	got, ok := checksumFor(listing, "studylog_Linux_x86_64.tar.gz")
	require.True(t, ok)
	assert.Equal(t, "abc123", got)

	got, ok = checksumFor(listing, "studylog_Darwin_all.tar.gz")
	require.True(t, ok)
	assert.Equal(t, "def456", got)

	_, ok = checksumFor(listing, "studylog_Windows_x86_64.zip")
	assert.False(t, ok)
}

func makeTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     name,
		Mode:     0755,
		Size:     int64(len(content)),
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func makeZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	require.NoError(t, err)
	_, err = w.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestUnpackBinary(t *testing.T) {
	binary := []byte("fake elf binary")

	t.Run("tar.gz", func(t *testing.T) {
		archive := makeTarGz(t, "studylog", binary)
		got, err := unpackBinary(archive, "studylog_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("zip", func(t *testing.T) {
		archive := makeZip(t, "studylog.exe", binary)
		got, err := unpackBinary(archive, "studylog_Windows_x86_64.zip")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := makeTarGz(t, "README.md", []byte("docs"))
		_, err := unpackBinary(archive, "studylog_Linux_x86_64.tar.gz")
		require.Error(t, err)
	})
}

func TestInstallBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "studylog")
	require.NoError(t, os.WriteFile(target, []byte("old binary"), 0755))

	newBinary := []byte("new binary")
	require.NoError(t, installBinary(target, newBinary))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newBinary, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestInstallBinaryMissingTarget(t *testing.T) {
	err := installBinary(filepath.Join(t.TempDir(), "nope"), []byte("data"))
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/szymonw/studylog/releases/latest", r.URL.Path)
		fmt.Fprint(w, `{"tag_name":"v1.4.0","html_url":"https://example.com/rel"}`)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))

	res, err := c.Check(context.Background(), &CheckInput{Version: "1.3.0"})
	require.NoError(t, err)
	assert.True(t, res.UpdateAvailable)
	assert.Equal(t, "v1.4.0", res.LatestVersion)

	res, err = c.Check(context.Background(), &CheckInput{Version: "v1.4.0"})
	require.NoError(t, err)
	assert.False(t, res.UpdateAvailable)

	res, err = c.Check(context.Background(), &CheckInput{Version: "v2.0.0"})
	require.NoError(t, err)
	assert.False(t, res.UpdateAvailable)
}

func TestCheckDevBuild(t *testing.T) {
	c := NewChecker()
	_, err := c.Check(context.Background(), &CheckInput{Version: "dev"})
	require.ErrorIs(t, err, ErrDevBuild)
}

func TestUpdateRejectsDevBuild(t *testing.T) {
	c := NewChecker()
	err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "dev"}, func(UpdateProgress) {})
	require.ErrorIs(t, err, ErrDevBuild)
}

func TestUpdateBadChecksum(t *testing.T) {
	asset, err := assetName()
	if err != nil {
		t.Skipf("no release asset for this platform: %v", err)
	}

	archive := makeTarGz(t, "studylog", []byte("binary"))

	mux := http.NewServeMux()
	mux.HandleFunc("/szymonw/studylog/releases/download/v1.1.0/"+asset, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(archive)
	})
	mux.HandleFunc("/szymonw/studylog/releases/download/v1.1.0/checksums.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "%064d  %s\n", 0, asset)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	err = c.Update(context.Background(), &UpdateInput{
		CurrentVersion: "v1.0.0",
		TargetVersion:  "v1.1.0",
	}, func(UpdateProgress) {})
	require.ErrorIs(t, err, ErrChecksum)
}

func TestUpdateEndToEnd(t *testing.T) {
	binary := []byte("#!/bin/sh\necho studylog v1.1.0\n")
	asset, err := assetName()
	if err != nil {
		t.Skipf("no release asset for this platform: %v", err)
	}

	var archive []byte
	if filepath.Ext(asset) == ".zip" {
		archive = makeZip(t, "studylog.exe", binary)
	} else {
		archive = makeTarGz(t, "studylog", binary)
	}
	sum := sha256.Sum256(archive)
	checksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(sum[:]), asset)

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/szymonw/studylog/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name":"v1.1.0","html_url":""}`)
	})
	mux.HandleFunc("/szymonw/studylog/releases/download/v1.1.0/"+asset, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(archive)
	})
	mux.HandleFunc("/szymonw/studylog/releases/download/v1.1.0/checksums.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, checksums)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	dir := t.TempDir()
	target := filepath.Join(dir, "studylog")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	c := NewChecker(
		WithBaseURLs(srv.URL, srv.URL),
		WithExecPath(func() (string, error) { return target, nil }),
	)

	var stages []string
	err = c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, binary, got)
	assert.Contains(t, stages, "download")
	assert.Contains(t, stages, "done")
}
