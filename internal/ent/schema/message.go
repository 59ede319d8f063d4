package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// Message holds the schema definition for the Message entity.
type Message struct {
	ent.Schema
}

func (Message) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("conversation_id").Comment("会话ID"),
		field.String("sender_id").Comment("发送者用户ID"),
		field.Text("text").Comment("消息文本内容"),
		field.Time("sent_at").Comment("消息发送时间"),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		// 索引：按会话和时间顺序查询消息
		index.Fields("conversation_id", "sent_at"),
		// 索引：按发送者查询消息
		index.Fields("sender_id"),
	}
}
