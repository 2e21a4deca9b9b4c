package ena

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mitre/enacp/enalib"
	"github.com/stretchr/testify/require"
)

func TestRetrieveParsesFileReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/filereport", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "ERR000001", q.Get("accession"))
		require.Equal(t, "read_run", q.Get("result"))
		require.Equal(t, "json", q.Get("format"))
		w.Write([]byte(`[{
			"run_accession": "ERR000001",
			"fastq_ftp": "ftp.example.org/path/a.fastq.gz;ftp.example.org/path/b.fastq.gz",
			"fastq_md5": "aaa;bbb",
			"fastq_bytes": "10;20"
		}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	acc, err := c.Retrieve("ERR000001")
	require.NoError(t, err)
	require.Equal(t, "ERR000001", acc.ID)
	require.Len(t, acc.Files, 2)
	require.Equal(t, "ftp.example.org/path/a.fastq.gz", acc.Files[0].RemotePath)
	require.Equal(t, "a.fastq.gz", acc.Files[0].Name)
	require.Equal(t, "aaa", acc.Files[0].Md5Hash)
	require.Equal(t, uint64(10), acc.Files[0].Size)
	require.Equal(t, "ftp.example.org/path/b.fastq.gz", acc.Files[1].RemotePath)
}

func TestRetrievePreservesPathOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"run_accession":"ERR2","fastq_ftp":"h/c.gz;h/a.gz;h/b.gz"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	acc, err := c.Retrieve("ERR2")
	require.NoError(t, err)
	require.Len(t, acc.Files, 3)
	require.Equal(t, "h/c.gz", acc.Files[0].RemotePath)
	require.Equal(t, "h/a.gz", acc.Files[1].RemotePath)
	require.Equal(t, "h/b.gz", acc.Files[2].RemotePath)
}

func TestRetrieveServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("portal fell over"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Retrieve("ERR000001")
	var lookupErr *enalib.LookupError
	require.True(t, errors.As(err, &lookupErr))
	require.Equal(t, "ERR000001", lookupErr.Accession)
}

func TestRetrieveAPIErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":400,"message":"invalid accession"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Retrieve("bogus")
	var lookupErr *enalib.LookupError
	require.True(t, errors.As(err, &lookupErr))
	require.Contains(t, err.Error(), "invalid accession")
}

func TestRetrieveUnreachableEndpoint(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 100*time.Millisecond)
	_, err := c.Retrieve("ERR000001")
	var lookupErr *enalib.LookupError
	require.True(t, errors.As(err, &lookupErr))
}

func TestRetrieveEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Retrieve("ERR000001")
	var notFound *enalib.NotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "ERR000001", notFound.Accession)
}

func TestRetrieveNoRegisteredFiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"run_accession":"ERR000001","fastq_ftp":""}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Retrieve("ERR000001")
	var notFound *enalib.NotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestRetrieveMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not even json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Retrieve("ERR000001")
	var lookupErr *enalib.LookupError
	require.True(t, errors.As(err, &lookupErr))
}

func TestRetrieveReportWithoutAccession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"fastq_ftp":"h/a.gz"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Retrieve("ERR000001")
	var lookupErr *enalib.LookupError
	require.True(t, errors.As(err, &lookupErr))
}

func TestSplitListDropsEmptyEntries(t *testing.T) {
	require.Nil(t, splitList(""))
	require.Equal(t, []string{"a"}, splitList("a"))
	require.Equal(t, []string{"a", "b"}, splitList("a;b;"))
}
