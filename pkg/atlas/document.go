package atlas

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/starling-atlas/pkg/encoding"
)

// Element names in Starling/Sparrow texture atlas XML.
const (
	ElementAtlas      = "TextureAtlas"
	ElementSubTexture = "SubTexture"
)

// Document is a decoded texture atlas descriptor.
type Document struct {
	ImagePath string   // imagePath attribute of <TextureAtlas>, if any
	Records   []Record // one per <SubTexture>, in document order
}

// ParseDocument decodes descriptor XML from raw bytes.
func ParseDocument(data []byte) (*Document, error) {
	return ReadDocument(bytes.NewReader(data))
}

// ParseDocumentFile decodes a descriptor XML file from disk.
func ParseDocumentFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading atlas descriptor: %w", err)
	}
	return ParseDocument(data)
}

// ReadDocument decodes descriptor XML from r. Every <SubTexture> element is
// collected wherever it sits in the tree; order is preserved because pivot
// inheritance and sequence segmentation both depend on it. Non-UTF-8
// documents are decoded through their declared charset.
func ReadDocument(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = encoding.CharsetReader

	doc := &Document{}
	sawElement := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDescriptor, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawElement = true

		switch start.Name.Local {
		case ElementAtlas:
			for _, a := range start.Attr {
				if a.Name.Local == "imagePath" {
					doc.ImagePath = a.Value
				}
			}
		case ElementSubTexture:
			attrs := make(map[string]string, len(start.Attr))
			for _, a := range start.Attr {
				attrs[a.Name.Local] = a.Value
			}
			doc.Records = append(doc.Records, Record{attrs: attrs})
		}
	}

	if !sawElement {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedDescriptor)
	}
	return doc, nil
}
