package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/approute/approute"
	"github.com/gorilla/schema"
)

// maxMultipartMem caps how much of a multipart body is held in memory,
// matching net/http's own default.
const maxMultipartMem = 32 << 20

type Parser struct {
	decoder *schema.Decoder
	validator
}

func NewParser() *Parser {
	return &Parser{
		decoder:   newDecoder(),
		validator: newValidator(),
	}
}

// ParseBody decodes into a pointer to a struct the JSON data in body.
// If successful, ParseBody runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
//
// ParseBody reads the entire body and it can't be read from again.
// Use a [io.TeeReader] if the body needs to be reused after calling ParseBody.
func (p *Parser) ParseBody(body io.Reader, structPtr any) error {
	var ourFault *json.InvalidUnmarshalError
	err := json.NewDecoder(body).Decode(structPtr)
	if errors.As(err, &ourFault) {
		return fmt.Errorf("approute/http/req: %w: ParseBody called with non-pointer: %s", approute.ErrUnexpected, err)
	}

	if err != nil {
		return fmt.Errorf("approute/http/req: %w: failed decoding request body: %s", approute.ErrBadFormat, err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("approute/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParseForm decodes into a pointer to a struct the form data in the request.
// Both URL-encoded and multipart form bodies are supported.
// If successful, ParseForm runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParseForm(r *http.Request, structPtr any) error {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var err error
	if ct == "multipart/form-data" {
		err = r.ParseMultipartForm(maxMultipartMem)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return fmt.Errorf("approute/http/req: %w: failed reading request form: %s", approute.ErrBadFormat, err)
	}

	if err := p.decoder.Decode(structPtr, r.PostForm); err != nil {
		return fmt.Errorf("approute/http/req: failed decoding request form: %w", translateDecoderError(err))
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("approute/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParseQueryParams decodes into a pointer to a struct the query param data in *http.Request.URL.Query.
// If successful, ParseQueryParams runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	if err := p.decoder.Decode(structPtr, params); err != nil {
		return fmt.Errorf("approute/http/req: failed decoding request query params: %w", translateDecoderError(err))
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("approute/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}
