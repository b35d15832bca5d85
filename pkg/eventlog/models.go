package eventlog

import "time"

// DecodedEvent is one row logged for a decoded P25 message event: the
// network ID that introduced it, the event kind, and whichever
// kind-specific fields apply.
type DecodedEvent struct {
	ID uint `gorm:"primarykey" json:"id"`

	Kind     string `gorm:"index;not null" json:"kind"`
	NAC      uint16 `gorm:"index" json:"nac"`
	DataUnit string `gorm:"index" json:"data_unit"`

	SrcUnit   uint32 `gorm:"index" json:"src_unit"`
	DestUnit  uint32 `gorm:"index" json:"dest_unit"`
	TalkGroup uint16 `gorm:"index" json:"talk_group"`

	Channel uint16 `json:"channel"`
	Opcode  string `json:"opcode"`

	ErrMessage string `json:"err_message"`

	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for DecodedEvent.
func (DecodedEvent) TableName() string { return "decoded_events" }
