// Copyright 2019 The MITRE Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ena

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/mitre/enacp/enalib"
	"github.com/mitre/enacp/flags"
	"github.com/mitre/enacp/info"
	"github.com/pkg/errors"
)

var defaultEndpoint = "https://www.ebi.ac.uk/ena/portal/api"

const (
	resultType   = "read_run"
	reportFields = "run_accession,fastq_ftp,fastq_md5,fastq_bytes"
)

// Client is an implementation of the enalib.Resolver interface that uses the
// ENA Portal API's filereport endpoint to find the files registered for an
// accession.
type Client struct {
	url  string
	http *http.Client
}

// NewClient creates a client with given parameters to communicate with the ENA Portal API.
// A zero timeout leaves the http client without a deadline.
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = defaultEndpoint
	}
	return &Client{
		url:  strings.TrimSuffix(url, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// Retrieve The function to call to get the file report for a single accession.
func (c *Client) Retrieve(accession string) (*enalib.Accession, error) {
	req, err := http.NewRequest("GET", c.url+"/filereport", nil)
	if err != nil {
		return nil, &enalib.LookupError{Accession: accession, Err: errors.New("can't create request to " + info.PortalName)}
	}
	q := req.URL.Query()
	q.Set("accession", accession)
	q.Set("result", resultType)
	q.Set("fields", reportFields)
	q.Set("format", "json")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", info.BinaryName+"-"+info.Version)
	if flags.Verbose {
		reqdump, err := httputil.DumpRequestOut(req, true)
		if err != nil {
			return nil, errors.New("INTERNAL ERROR: failed to print request to API for verbose")
		}
		fmt.Println("REQUEST TO API")
		fmt.Println(string(reqdump))
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &enalib.LookupError{Accession: accession, Err: errors.Wrap(err, "can't send request to "+info.PortalName)}
	}
	defer resp.Body.Close()
	if flags.Verbose {
		resdump, err := httputil.DumpResponse(resp, true)
		if err != nil {
			return nil, errors.New("INTERNAL ERROR: failed to print response from API for verbose")
		}
		fmt.Println("RESPONSE FROM API")
		fmt.Println(string(resdump))
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		body, _ := ioutil.ReadAll(resp.Body)
		if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
			return nil, &enalib.LookupError{
				Accession: accession,
				Err:       errors.Errorf("%s returned HTTP status: %d: %s\nResponse:%s", info.PortalName, resp.StatusCode, resp.Status, string(body)),
			}
		}
		return nil, &enalib.LookupError{
			Accession: accession,
			Err:       errors.Errorf("%s returned error: %d: %s", info.PortalName, apiErr.Status, apiErr.Message),
		}
	}
	reports := []Report{}
	if err := json.NewDecoder(resp.Body).Decode(&reports); err != nil {
		return nil, &enalib.LookupError{Accession: accession, Err: errors.Wrap(err, "failed to decode response from "+info.PortalName)}
	}

	return sanitize(accession, reports)
}

func sanitize(accession string, reports []Report) (*enalib.Accession, error) {
	if len(reports) == 0 {
		return nil, &enalib.NotFoundError{Accession: accession}
	}
	acc := &enalib.Accession{ID: accession}
	for i := range reports {
		if err := reports[i].Validate(); err != nil {
			return nil, &enalib.LookupError{Accession: accession, Err: err}
		}
		acc.Files = append(acc.Files, reports[i].Files()...)
	}
	if len(acc.Files) == 0 {
		return nil, &enalib.NotFoundError{Accession: accession}
	}
	return acc, nil
}
