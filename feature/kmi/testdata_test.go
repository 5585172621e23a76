package kmi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testWhitelist = `<abi-corpus-group architecture='elf-arm-aarch64'>
  <abi-corpus path='vmlinux'>
    <elf-function-symbols>
      <elf-symbol name='foo' type='func-type' crc='0x00000001'/>
      <elf-symbol name='baz' type='func-type' crc='0x00000003'/>
    </elf-function-symbols>
    <elf-variable-symbols>
      <elf-symbol name='jiffies' type='object-type' crc='0x15ba50a6'/>
    </elf-variable-symbols>
  </abi-corpus>
</abi-corpus-group>
`
	// foo drifted, baz is missing, jiffies is consistent
	testSymversFailing = "0x2\tfoo\tvmlinux\tEXPORT_SYMBOL\n0x15BA50A6\tjiffies\tvmlinux\tEXPORT_SYMBOL\n"
	// baz is missing, nothing drifted
	testSymversPassing = "0x1\tfoo\tvmlinux\tEXPORT_SYMBOL\n15ba50a6\tjiffies\tvmlinux\tEXPORT_SYMBOL\n0x9\textra\tvmlinux\tEXPORT_SYMBOL_GPL\n"
)

// writeFile writes content under dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}
