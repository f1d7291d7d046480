package controllers

import (
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/pkg/resp"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/utils"
)

// UploadController stores multipart files and hands back a public URL,
// the same contract the storefront's hosted file storage exposed.
type UploadController struct {
	Dir        string
	PublicBase string
}

func NewUploadController(dir, publicBase string) *UploadController {
	return &UploadController{Dir: dir, PublicBase: publicBase}
}

// Upload reads the multipart field "file".
func (h *UploadController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "file is required")
		return
	}

	name := utils.UploadFileName(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.Dir, name)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"url": h.PublicBase + path.Join("/uploads", name)})
}
