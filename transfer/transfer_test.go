package transfer

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFaspSource(t *testing.T) {
	source := FaspSource("ftp.sra.ebi.ac.uk/vol1/fastq/ERR114/068/ERR11466368/ERR11466368_1.fastq.gz")
	require.Equal(t, "era-fasp@fasp.sra.ebi.ac.uk:vol1/fastq/ERR114/068/ERR11466368/ERR11466368_1.fastq.gz", source)
}

func TestFaspSourceLeavesOtherHostsAlone(t *testing.T) {
	require.Equal(t, "ftp.example.org/path/a.fastq.gz", FaspSource("ftp.example.org/path/a.fastq.gz"))
}

func TestHTTPSource(t *testing.T) {
	require.Equal(t, "https://ftp.sra.ebi.ac.uk/vol1/a.gz", HTTPSource("ftp.sra.ebi.ac.uk/vol1/a.gz"))
	require.Equal(t, "https://mirror.example.org/a.gz", HTTPSource("https://mirror.example.org/a.gz"))
	require.Equal(t, "http://mirror.example.org/a.gz", HTTPSource("http://mirror.example.org/a.gz"))
}

func TestAscpArgs(t *testing.T) {
	a := &Ascp{
		Binary:   "ascp",
		Identity: "/home/u/.aspera/cli/etc/asperaweb_id_dsa.openssh",
		Rate:     defaultRate,
		Port:     defaultPort,
	}
	args := a.args("ftp.sra.ebi.ac.uk/vol1/a.gz", "ERR000001")
	require.Equal(t, []string{
		"-T",
		"-l", "300m",
		"-P", "33001",
		"-i", "/home/u/.aspera/cli/etc/asperaweb_id_dsa.openssh",
		"era-fasp@fasp.sra.ebi.ac.uk:vol1/a.gz",
		"ERR000001" + string(os.PathSeparator),
	}, args)
}

func TestAscpFetchReportsExitStatus(t *testing.T) {
	a := &Ascp{Binary: "false", Identity: "unused", Rate: defaultRate, Port: defaultPort}
	err := a.Fetch("ftp.sra.ebi.ac.uk/vol1/a.gz", t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "ftp.sra.ebi.ac.uk/vol1/a.gz")
}

func TestAscpFetchSucceedsOnZeroExit(t *testing.T) {
	a := &Ascp{Binary: "true", Identity: "unused", Rate: defaultRate, Port: defaultPort}
	require.NoError(t, a.Fetch("ftp.sra.ebi.ac.uk/vol1/a.gz", t.TempDir()))
}
