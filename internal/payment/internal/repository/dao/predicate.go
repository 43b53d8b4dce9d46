// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PredicateKind uint8

const (
	PredicateEq PredicateKind = iota + 1
	PredicateIn
	PredicateRange
)

// Predicate 查询和条件更新使用的条件，多个 Predicate 之间是 AND 的关系
type Predicate struct {
	Kind   PredicateKind
	Column string
	Values []any
}

func Eq(column string, val any) Predicate {
	return Predicate{Kind: PredicateEq, Column: column, Values: []any{val}}
}

func In[T any](column string, vals ...T) Predicate {
	values := make([]any, 0, len(vals))
	for _, v := range vals {
		values = append(values, v)
	}
	return Predicate{Kind: PredicateIn, Column: column, Values: values}
}

// Range 左闭右开，nil 表示该侧不限制
func Range(column string, lower, upper any) Predicate {
	return Predicate{Kind: PredicateRange, Column: column, Values: []any{lower, upper}}
}

func (p Predicate) Expression() clause.Expression {
	col := clause.Column{Name: p.Column}
	switch p.Kind {
	case PredicateEq:
		return clause.Eq{Column: col, Value: p.Values[0]}
	case PredicateIn:
		return clause.IN{Column: col, Values: p.Values}
	case PredicateRange:
		exprs := make([]clause.Expression, 0, 2)
		if p.Values[0] != nil {
			exprs = append(exprs, clause.Gte{Column: col, Value: p.Values[0]})
		}
		if p.Values[1] != nil {
			exprs = append(exprs, clause.Lt{Column: col, Value: p.Values[1]})
		}
		if len(exprs) == 0 {
			return clause.Expr{SQL: "1 = 1"}
		}
		return clause.And(exprs...)
	default:
		// 不认识的条件一律不匹配任何数据
		return clause.Expr{SQL: "1 = 0"}
	}
}

// withPredicates 没有条件的时候不能加上空的 WHERE
func withPredicates(db *gorm.DB, preds []Predicate) *gorm.DB {
	if len(preds) == 0 {
		return db
	}
	exprs := make([]clause.Expression, 0, len(preds))
	for _, p := range preds {
		exprs = append(exprs, p.Expression())
	}
	return db.Clauses(clause.Where{Exprs: exprs})
}
