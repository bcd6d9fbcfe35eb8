package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// extractDOCX pulls the paragraph text out of a DOCX file. A DOCX is a zip
// archive whose main part is word/document.xml; paragraphs with content are
// joined by blank lines.
func extractDOCX(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}

	docXML, err := readZipFile(zr, "word/document.xml")
	if err != nil {
		return "", fmt.Errorf("invalid docx (missing document.xml): %w", err)
	}

	return strings.Join(parseDocumentXML(docXML), "\n\n"), nil
}

// parseDocumentXML walks WordprocessingML with namespace-agnostic matching:
// <w:p> delimits paragraphs, <w:t> holds run text, <w:tab> and <w:br> map to
// their whitespace equivalents.
func parseDocumentXML(docXML []byte) []string {
	dec := xml.NewDecoder(bytes.NewReader(docXML))

	var paragraphs []string
	var sb strings.Builder
	inParagraph := false

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch strings.ToLower(t.Name.Local) {
			case "p":
				inParagraph = true
				sb.Reset()
			case "t":
				if inParagraph {
					sb.WriteString(readElementText(dec))
				}
			case "tab":
				if inParagraph {
					sb.WriteString("\t")
				}
			case "br", "cr":
				if inParagraph {
					sb.WriteString("\n")
				}
			}
		case xml.EndElement:
			if strings.ToLower(t.Name.Local) == "p" && inParagraph {
				if text := strings.TrimSpace(sb.String()); text != "" {
					paragraphs = append(paragraphs, text)
				}
				inParagraph = false
			}
		}
	}

	return paragraphs
}

func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	// Try exact match first.
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	// Then case-insensitive match.
	lower := strings.ToLower(name)
	for _, f := range zr.File {
		if strings.ToLower(f.Name) == lower {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

func readElementText(dec *xml.Decoder) string {
	var out strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.CharData:
			out.Write([]byte(t))
		case xml.EndElement:
			return out.String()
		}
	}
	return out.String()
}
