package kernel

type RecordID string

func NewRecordID(id string) RecordID { return RecordID(id) }
func (r RecordID) String() string    { return string(r) }
func (r RecordID) IsEmpty() bool     { return string(r) == "" }

type ProjectID string

func NewProjectID(id string) ProjectID { return ProjectID(id) }
func (p ProjectID) String() string     { return string(p) }
func (p ProjectID) IsEmpty() bool      { return string(p) == "" }

type MessageID string

func NewMessageID(id string) MessageID { return MessageID(id) }
func (m MessageID) String() string     { return string(m) }
func (m MessageID) IsEmpty() bool      { return string(m) == "" }
