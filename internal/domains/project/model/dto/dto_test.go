package dto_test

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"

	"teammeet/internal/domains/project/model/dto"
	"teammeet/shared/validator"
)

func imageHeader(contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "cover.png",
		Size:     size,
		Header: textproto.MIMEHeader{
			"Content-Type": []string{contentType},
		},
	}
}

func TestUploadProjectImageRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.UploadProjectImageRequest
		wantErr bool
	}{
		{
			name: "valid png within size limit",
			req: dto.UploadProjectImageRequest{
				Image: imageHeader("image/png", 512*1024),
			},
		},
		{
			name:    "missing image",
			req:     dto.UploadProjectImageRequest{},
			wantErr: true,
		},
		{
			name: "unsupported content type",
			req: dto.UploadProjectImageRequest{
				Image: imageHeader("application/pdf", 512*1024),
			},
			wantErr: true,
		},
		{
			name: "image over the size limit",
			req: dto.UploadProjectImageRequest{
				Image: imageHeader("image/png", 2*1024*1024),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
