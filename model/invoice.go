package model

type InvoiceFile struct {
	FileName string
	Pages    int
	Content  []byte
}
