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
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mattrbianchi/twig"
	"github.com/mitre/enacp/flags"
	"github.com/pkg/errors"
)

const (
	ftpHost  = "ftp.sra.ebi.ac.uk/"
	faspHost = "era-fasp@fasp.sra.ebi.ac.uk:"

	defaultRate = "300m"
	defaultPort = 33001
)

// Ascp copies files by invoking Aspera's ascp client once per remote file.
// The subprocess is opaque to enacp, only its exit status and captured
// output are observed.
type Ascp struct {
	Binary   string
	Identity string
	Rate     string
	Port     int
	Timeout  time.Duration
}

// NewAscp finds the ascp binary and openssh identity file under the user's
// aspera cli install, falling back to PATH for the binary. The identity path
// can be overridden when the key lives somewhere else.
func NewAscp(identity string, timeout time.Duration) (*Ascp, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "couldn't resolve home directory while looking for the aspera cli")
	}
	binary := filepath.Join(home, ".aspera", "cli", "bin", "ascp")
	if !flags.FileExists(binary) {
		binary, err = exec.LookPath("ascp")
		if err != nil {
			return nil, errors.New("couldn't find ascp: expected it under ~/.aspera/cli/bin or on PATH")
		}
	}
	if identity == "" {
		identity = filepath.Join(home, ".aspera", "cli", "etc", "asperaweb_id_dsa.openssh")
	}
	if !flags.FileExists(identity) {
		return nil, errors.Errorf("couldn't find aspera identity file at: %s", identity)
	}
	return &Ascp{
		Binary:   binary,
		Identity: identity,
		Rate:     defaultRate,
		Port:     defaultPort,
		Timeout:  timeout,
	}, nil
}

// Fetch copies remotePath into destDir with one ascp invocation.
func (a *Ascp) Fetch(remotePath, destDir string) error {
	ctx := context.Background()
	cancel := func() {}
	if a.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, a.Timeout)
	}
	defer cancel()
	args := a.args(remotePath, destDir)
	twig.Debugf("%s %s", a.Binary, strings.Join(args, " "))
	out, err := exec.CommandContext(ctx, a.Binary, args...).CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "ascp failed to copy %s: %s", remotePath, string(out))
	}
	return nil
}

func (a *Ascp) args(remotePath, destDir string) []string {
	return []string{
		"-T",
		"-l", a.Rate,
		"-P", strconv.Itoa(a.Port),
		"-i", a.Identity,
		FaspSource(remotePath),
		destDir + string(os.PathSeparator),
	}
}

// FaspSource rewrites an ftp path from a file report into the era-fasp
// source form ascp expects.
func FaspSource(remotePath string) string {
	return strings.Replace(remotePath, ftpHost, faspHost, 1)
}
