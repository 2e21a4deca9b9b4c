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

package transfer

import (
	"net/http"
	"strings"
	"time"

	"github.com/cavaliercoder/grab"
	"github.com/mitre/enacp/info"
	"github.com/pkg/errors"
)

// HTTP copies files over https instead of fasp. The archive serves the same
// paths its file reports name over plain https, so this works on hosts
// without an aspera install, just slower.
type HTTP struct {
	client *grab.Client
}

// NewHTTP creates an https transferer. A zero timeout leaves the underlying
// http client without a deadline.
func NewHTTP(timeout time.Duration) *HTTP {
	c := grab.NewClient()
	c.UserAgent = info.BinaryName + "-" + info.Version
	c.HTTPClient = &http.Client{Timeout: timeout}
	return &HTTP{client: c}
}

// Fetch downloads remotePath into destDir.
func (h *HTTP) Fetch(remotePath, destDir string) error {
	req, err := grab.NewRequest(destDir, HTTPSource(remotePath))
	if err != nil {
		return errors.Wrapf(err, "couldn't build download request for %s", remotePath)
	}
	resp := h.client.Do(req)
	if err := resp.Err(); err != nil {
		return errors.Wrapf(err, "failed to download %s", remotePath)
	}
	return nil
}

// HTTPSource turns a file report path into a https url.
func HTTPSource(remotePath string) string {
	if strings.HasPrefix(remotePath, "http://") || strings.HasPrefix(remotePath, "https://") {
		return remotePath
	}
	return "https://" + remotePath
}
