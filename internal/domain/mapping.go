package domain

import (
	"fmt"
	"strings"
)

// Field names a GuestRecord column. The value doubles as the database
// column name and the key used in header mapping files.
type Field string

const (
	FieldName           Field = "name"
	FieldRelation       Field = "relation"
	FieldAttendStatus   Field = "attend_status"
	FieldWithGuest      Field = "with_guest"
	FieldNeedChildSeat  Field = "need_child_seat"
	FieldNeedVegetarian Field = "need_vegetarian"
	FieldNeedInvitation Field = "need_invitation"
	FieldEmail          Field = "email"
	FieldAddress        Field = "address"
	FieldPhone          Field = "phone"
	FieldMessage        Field = "message"
	FieldAnswerTime     Field = "answer_time"
	FieldAnswerSeconds  Field = "answer_seconds"
	FieldIP             Field = "ip"
	FieldFullFlag       Field = "full_flag"
	FieldUserRecord     Field = "user_record"
	FieldMemberTime     Field = "member_time"
	FieldHash           Field = "hash"
)

// Fields lists every GuestRecord field in column order.
var Fields = []Field{
	FieldName, FieldRelation, FieldAttendStatus, FieldWithGuest,
	FieldNeedChildSeat, FieldNeedVegetarian, FieldNeedInvitation,
	FieldEmail, FieldAddress, FieldPhone, FieldMessage,
	FieldAnswerTime, FieldAnswerSeconds, FieldIP, FieldFullFlag,
	FieldUserRecord, FieldMemberTime, FieldHash,
}

// HeaderMapping tells the normalizer which sheet header label feeds each field.
// Labels are matched exactly, punctuation included.
type HeaderMapping map[Field]string

// DefaultHeaderMapping returns the header labels of the survey export the
// service was built for. The trailing columns are the tool's own metadata.
func DefaultHeaderMapping() HeaderMapping {
	return HeaderMapping{
		FieldName:           "請問您的大名：",
		FieldRelation:       "請問您是哪一方的親友？",
		FieldAttendStatus:   "請問您是否會出席婚宴？",
		FieldWithGuest:      "請問您是否攜伴？（攜伴請填寫 yes-人數，例如 yes-1；不攜伴請填 no）",
		FieldNeedChildSeat:  "請問是否需要兒童座椅？",
		FieldNeedVegetarian: "請問是否需要素食餐點？",
		FieldNeedInvitation: "請問是否需要寄送紙本喜帖？",
		FieldEmail:          "請留下您的電子郵件：",
		FieldAddress:        "喜帖寄送地址（需要紙本喜帖者請填寫）：",
		FieldPhone:          "請留下您的聯絡電話：",
		FieldMessage:        "想對新人說的話：",
		FieldAnswerTime:     "填答時間",
		FieldAnswerSeconds:  "填答秒數",
		FieldIP:             "IP紀錄",
		FieldFullFlag:       "額滿結束註記",
		FieldUserRecord:     "使用者紀錄",
		FieldMemberTime:     "會員時間",
		FieldHash:           "Hash",
	}
}

// Merge returns a copy of m with every entry of override applied on top.
func (m HeaderMapping) Merge(override HeaderMapping) HeaderMapping {
	out := make(HeaderMapping, len(m))
	for f, label := range m {
		out[f] = label
	}
	for f, label := range override {
		out[f] = label
	}
	return out
}

// Validate checks that the mapping covers every field exactly once with
// distinct, non-blank labels and names no unknown fields.
func (m HeaderMapping) Validate() error {
	known := make(map[Field]bool, len(Fields))
	for _, f := range Fields {
		known[f] = true
	}
	for f := range m {
		if !known[f] {
			return fmt.Errorf("%w: unknown field %q in header mapping", ErrValidation, f)
		}
	}

	seen := make(map[string]Field, len(m))
	for _, f := range Fields {
		label, ok := m[f]
		if !ok || strings.TrimSpace(label) == "" {
			return fmt.Errorf("%w: no header label for field %q", ErrValidation, f)
		}
		if other, dup := seen[label]; dup {
			return fmt.Errorf("%w: label %q mapped to both %q and %q", ErrValidation, label, other, f)
		}
		seen[label] = f
	}
	return nil
}
