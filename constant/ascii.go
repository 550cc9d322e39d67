package constant

// AsciiArtLogo is the application's banner shown in the root command help.
const AsciiArtLogo = `
       _            _____           __
  ____(_)___  ___  / __(_)___  ____/ /
 / ___/ / __ \/ _ \/ /_/ / __ \/ __  / 
/ /__/ / / / /  __/ __/ / / / / /_/ /  
\___/_/_/ /_/\___/_/ /_/_/ /_/\__,_/   
`
