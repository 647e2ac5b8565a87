package dto

// UpdateProfileReq は/update_profileエンドポイントのリクエストボディを表します。
// ポインタのフィールドはリクエストに含まれた場合のみ更新されます。
type UpdateProfileReq struct {
	Email    *string `json:"email"`
	UserData *string `json:"user_data"`
}
