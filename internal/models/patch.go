package models

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
