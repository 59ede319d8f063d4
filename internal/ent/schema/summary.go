package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// Summary holds the schema definition for the Summary entity.
type Summary struct {
	ent.Schema
}

func (Summary) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the Summary.
func (Summary) Fields() []ent.Field {
	return []ent.Field{
		field.String("conversation_id").Comment("会话ID"),
		field.String("engine").Comment("总结引擎：rules=规则引擎, llm=大模型"),
		field.Time("summary_date").Comment("摘要日期"),
		field.Text("content").Comment("摘要内容"),
	}
}

// Indexes of the Summary.
func (Summary) Indexes() []ent.Index {
	return []ent.Index{
		// 索引：按会话查询摘要
		index.Fields("conversation_id", "summary_date"),
	}
}
