package enalib

// Accession represents a run or sample accession after its file report has
// been resolved through the portal API.
type Accession struct {
	ID    string `json:"accession,omitempty"`
	Files []File `json:"files,omitempty"`
}

// File is one remote file registered for an accession. Files keep the order
// the portal API listed them in, which is also the order they're copied in.
type File struct {
	Name       string `json:"name,omitempty"`
	RemotePath string `json:"remotePath,omitempty"`
	Md5Hash    string `json:"md5,omitempty"`
	Size       uint64 `json:"size,omitempty"`
}
