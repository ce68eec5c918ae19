package entity

import "time"

// QC image slot counts.
const (
	MaxQCPics = 10
)

// QC is a quality-control inspection record for one serialized unit. The
// serial number is the primary key; the record is independent of the sales
// entities and printable as a label.
type QC struct {
	SN          string
	Timestamp   time.Time
	RecBy       string
	DelDate     string
	QCDate      string
	Staff       string
	ShopLabel   string
	QCPass      string
	YDLabel     string
	ProductType string
	BodyColor   string
	BulbType    string
	BulbColor   string
	Dimention   string
	QCRemark    string
	QCQty       int64

	PicLabel1  string
	PicLabel2  string
	PicManual1 string
	PicManual2 string
	PicQC      [MaxQCPics]string
	PicDriver  string
	PicRemote  string
	ShipID     string
}
