package flags

import (
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/mitre/enacp/awsutil"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var (
	EnvPrefix = "ena"

	OutDirName   = "outdir"
	ModeName     = "mode"
	EndpointName = "endpoint"
	IdentityName = "identity"
	TimeoutName  = "timeout"
	SkipMd5Name  = "skip-md5"
	SilentName   = "silent"
	VerboseName  = "verbose"

	Silent  bool
	Verbose bool

	OutDirMsg   = "The directory to create per-accession output directories in.\nEnvironment Variable: [$ENA_OUTDIR]"
	ModeMsg     = "How to copy the files.\nFORMAT: [ascp | http]\nascp uses the aspera cli expected to be installed and configured under the user's home directory, http downloads the same paths over https.\nEnvironment Variable: [$ENA_MODE]"
	EndpointMsg = "ADVANCED: Change the endpoint used to communicate with the ENA Portal API.\nEnvironment Variable: [$ENA_ENDPOINT]"
	IdentityMsg = "A path to the openssh identity file used by ascp. Defaults to the asperaweb key installed with the aspera cli.\nEnvironment Variable: [$ENA_IDENTITY]"
	TimeoutMsg  = "Network timeout applied to API requests and to each transfer.\nEXAMPLES: [30s | 5m]\nA value of 0 means no deadline.\nEnvironment Variable: [$ENA_TIMEOUT]"
	SkipMd5Msg  = "Skip verifying the md5 checksums the file report lists for downloaded files.\nEnvironment Variable: [$ENA_SKIP-MD5]"
	SilentMsg   = "Prints nothing, most useful when running in scripts."
	VerboseMsg  = "Prints everything, most useful for troubleshooting."
)

// ResolveAccession If a list of comma separated accessions was provided, use it.
// Otherwise, if a path to an accession file was given, deduce whether it's on s3 or local.
// Either way, attempt to read the file and make a list of unique accessions.
func ResolveAccession(acc string) ([]string, error) {
	var seen = make(map[string]bool)
	if strings.HasPrefix(acc, "http") {
		// we were given a url on s3.
		data, err := awsutil.ReadFile(acc)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't open accession list file at: %s", acc)
		}
		acc = string(data)
	}
	if NoFileErrors(acc) {
		data, err := ioutil.ReadFile(acc)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't open accession list file at: %s", acc)
		}
		acc = string(data)
	}
	// Now process acc
	aa := strings.FieldsFunc(acc, parseAccessions)
	list := make([]string, 0, len(aa))
	for _, a := range aa {
		if a != "" && !seen[a] {
			seen[a] = true
			list = append(list, a)
		}
	}
	if len(list) == 0 {
		return nil, errors.New("the input given for accessions resulted in no readable form")
	}

	return list, nil
}

func parseAccessions(r rune) bool {
	return r == '\n' || r == '\t' || r == ',' || r == ' '
}

func NoFileErrors(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

func HavePermissions(path string) bool {
	_, err := os.Stat(path)
	return !os.IsPermission(err)
}

func ResolveString(name string, value *string) {
	if value == nil {
		return
	}
	if viper.IsSet(name) {
		env := viper.GetString(name)
		if env != "" {
			*value = env
		}
	}
}

func ResolveInt(name string, value *int) {
	if value == nil {
		return
	}
	if viper.IsSet(name) {
		env := viper.GetInt(name)
		if env != 0 {
			*value = env
		}
	}
}

func ResolveBool(name string, value *bool) {
	if value == nil {
		return
	}
	if viper.IsSet(name) {
		env := viper.GetBool(name)
		*value = env
	}
}

func ResolveDuration(name string, value *time.Duration) {
	if value == nil {
		return
	}
	if viper.IsSet(name) {
		env := viper.GetDuration(name)
		if env != 0 {
			*value = env
		}
	}
}
