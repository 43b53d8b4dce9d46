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

package domain

type WechatInfo struct {
	// MiniOpenId 小程序的 openid，也是支付时候的付款人标识
	MiniOpenId string
	// UnionId 是整个公司账号内唯一,同一公司账号下的多个应用之间均相同
	UnionId string
}
