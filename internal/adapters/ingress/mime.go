package ingress

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
)

// messageContent is what a forwarded application email decomposes into.
type messageContent struct {
	body        string
	attachments []string
	// resumeText holds the first plain-text attachment, used as the resume
	// source when the body carries only a cover note.
	resumeText string
}

// extractContent pulls the text body and attachment names out of a message.
// For multipart messages it collects text/plain parts; anything with a
// filename is recorded as an attachment. Parse problems degrade to treating
// the remaining payload as plain text rather than failing the email.
func extractContent(msg *mail.Message) (*messageContent, error) {
	contentType := msg.Header.Get("Content-Type")

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		bodyBytes, err := io.ReadAll(msg.Body)
		if err != nil {
			return nil, err
		}
		return &messageContent{body: string(bodyBytes)}, nil
	}

	boundary, ok := params["boundary"]
	if !ok {
		bodyBytes, err := io.ReadAll(msg.Body)
		if err != nil {
			return nil, err
		}
		return &messageContent{body: string(bodyBytes)}, nil
	}

	content := &messageContent{}
	readParts(multipart.NewReader(msg.Body, boundary), content)

	return content, nil
}

func readParts(mr *multipart.Reader, content *messageContent) {
	var textBody bytes.Buffer

	for {
		part, err := mr.NextPart()
		if err != nil {
			// io.EOF ends the walk; any other error ends it with whatever
			// was collected so far.
			break
		}

		partType, partParams, err := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if err != nil {
			partType = "text/plain"
		}

		// Nested multipart/alternative wrapping the real text part
		if strings.HasPrefix(partType, "multipart/") {
			if nested, ok := partParams["boundary"]; ok {
				readParts(multipart.NewReader(part, nested), content)
			}
			continue
		}

		if filename := part.FileName(); filename != "" {
			content.attachments = append(content.attachments, filename)
			if partType == "text/plain" && content.resumeText == "" {
				if data, err := io.ReadAll(part); err == nil {
					content.resumeText = string(data)
				}
			}
			continue
		}

		if partType == "text/plain" {
			if data, err := io.ReadAll(part); err == nil {
				textBody.Write(data)
			}
		}
	}

	if textBody.Len() > 0 {
		if content.body != "" {
			content.body += "\n"
		}
		content.body += textBody.String()
	}
}
