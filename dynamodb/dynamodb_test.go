package dynamodb

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_LoadOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantLen int
		wantErr string
	}{
		{name: "region only", opts: Options{Region: "eu-west-1"}, wantLen: 1},
		{name: "static credentials", opts: Options{Region: "eu-west-1", AccessKey: "a", SecretKey: "s"}, wantLen: 2},
		{name: "missing region", opts: Options{Region: "  "}, wantErr: "region is required"},
		{name: "half credentials", opts: Options{Region: "eu-west-1", AccessKey: "a"}, wantErr: "must be set together"},
		{name: "session token alone", opts: Options{Region: "eu-west-1", SessionToken: "t"}, wantErr: "must be set together"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loadOpts, err := tt.opts.loadOptions()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, loadOpts, tt.wantLen)
		})
	}
}

func TestMoviesTableInput(t *testing.T) {
	input := moviesTableInput("movies")

	assert.Equal(t, "movies", aws.ToString(input.TableName))
	assert.Equal(t, types.BillingModePayPerRequest, input.BillingMode)
	require.Len(t, input.KeySchema, 1)
	assert.Equal(t, "id", aws.ToString(input.KeySchema[0].AttributeName))
	assert.Equal(t, types.KeyTypeHash, input.KeySchema[0].KeyType)
}

func TestValidateTable(t *testing.T) {
	assert.NoError(t, validateTable("movies"))
	assert.Error(t, validateTable(" "))
}
