package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func newTestServer() *httptest.Server {
	r := mux.NewRouter()
	r.HandleFunc("/filereport", FileReportHandler)
	return httptest.NewServer(r)
}

func TestFileReportHandler(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/filereport?accession=ERR000001")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reports []report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reports))
	require.Len(t, reports, 1)
	require.Equal(t, "ERR000001", reports[0].Accession)
	require.Contains(t, reports[0].FastqFtp, "ERR000001_1.fastq.gz;")
}

func TestFileReportHandlerUnknownAccession(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/filereport?accession=XRR000001")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reports []report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reports))
	require.Empty(t, reports)
}

func TestFileReportHandlerMissingAccession(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/filereport")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
