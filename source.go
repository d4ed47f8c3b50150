package htmlgrade

// InvalidArgumentsMessage is reported when neither or both of a file path
// and a URL are supplied.
const InvalidArgumentsMessage = "Invalid arguments. Provide either URL or file."

// Source identifies where raw HTML comes from. It is either a FileSource or
// a URLSource.
type Source interface {
	// String returns the path or URL the source points at.
	String() string

	source()
}

// FileSource reads HTML from a local file.
type FileSource struct {
	Path string
}

func (s FileSource) String() string { return s.Path }
func (FileSource) source()          {}

// URLSource fetches HTML over HTTP.
type URLSource struct {
	URL string
}

func (s URLSource) String() string { return s.URL }
func (URLSource) source()          {}

// NewSource returns the Source selected by exactly one of file or url.
// Returns EINVALID if neither or both are set.
func NewSource(file, url string) (Source, error) {
	switch {
	case file != "" && url == "":
		return FileSource{Path: file}, nil
	case file == "" && url != "":
		return URLSource{URL: url}, nil
	default:
		return nil, Errorf(EINVALID, InvalidArgumentsMessage)
	}
}
